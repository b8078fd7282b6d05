package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemEncodingParity(t *testing.T) {
	kinds := []ItemKind{
		ItemGun,
		ItemPoison,
		ItemBat,
		ItemBug,
		ItemVoteCancellor,
		ItemVoteDoubler,
		ItemVoteManipulator,
	}

	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			fresh, err := NewItem(kind)
			require.NoError(t, err)

			// fresh items encode to their even base value
			assert.Equal(t, int64(kind), fresh.EncodedValue())
			assert.False(t, fresh.IsUsed())

			used, err := fresh.Use()
			require.NoError(t, err)

			// used items encode to base value plus one
			assert.Equal(t, int64(kind)+1, used.EncodedValue())
			assert.True(t, used.IsUsed())

			roundTripped, err := ItemFromValue(used.EncodedValue())
			require.NoError(t, err)
			assert.Equal(t, used, roundTripped)
		})
	}
}

func TestItemUseTwiceFails(t *testing.T) {
	fresh, err := NewItem(ItemGun)
	require.NoError(t, err)

	used, err := fresh.Use()
	require.NoError(t, err)

	_, err = used.Use()
	require.Error(t, err)
	assert.True(t, IsCode(err, ErrCodeItemAlreadyUsed))
}

func TestMythicalChocolatesNeverReportedUsed(t *testing.T) {
	fresh, err := NewItem(ItemMythicalChocolates)
	require.NoError(t, err)
	assert.False(t, fresh.IsUsed())

	used, err := fresh.Use()
	require.NoError(t, err)

	// the sentinel exemption applies to the query, not the transition
	assert.True(t, used.Used)
	assert.False(t, used.IsUsed())

	_, err = used.Use()
	require.Error(t, err)
	assert.True(t, IsCode(err, ErrCodeItemAlreadyUsed))
}

func TestMythicalChocolatesEncoding(t *testing.T) {
	fresh := Item{Kind: ItemMythicalChocolates}
	assert.Equal(t, int64(-1), fresh.EncodedValue())

	used := Item{Kind: ItemMythicalChocolates, Used: true}
	assert.Equal(t, int64(0), used.EncodedValue())

	decodedFresh, err := ItemFromValue(-1)
	require.NoError(t, err)
	assert.Equal(t, fresh, decodedFresh)

	decodedUsed, err := ItemFromValue(0)
	require.NoError(t, err)
	assert.Equal(t, used, decodedUsed)
}

func TestItemFromValueRejectsBareUsedMarker(t *testing.T) {
	_, err := ItemFromValue(1)
	require.Error(t, err)

	appErr, ok := IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 500, appErr.HTTPStatus)
}

func TestItemFromValueRejectsUnknownEncodings(t *testing.T) {
	for _, value := range []int64{16, 17, 100, -3, -4} {
		_, err := ItemFromValue(value)
		assert.Error(t, err, "value %d should not decode", value)
	}
}

func TestNewItemRejectsUnknownKind(t *testing.T) {
	_, err := NewItem(ItemKind(3))
	assert.Error(t, err)

	_, err = NewItem(ItemKind(0))
	assert.Error(t, err)
}

func TestPlayerUseItem(t *testing.T) {
	t.Run("NoItemHeld", func(t *testing.T) {
		p := &Player{UserID: 1, Alias: "watari", RoomHost: 10}
		err := p.UseItem()
		require.Error(t, err)
		assert.True(t, IsCode(err, ErrCodeNoItemHeld))
	})

	t.Run("FreshItem", func(t *testing.T) {
		item, err := NewItem(ItemPoison)
		require.NoError(t, err)
		p := &Player{UserID: 1, Alias: "watari", RoomHost: 10, Item: &item}

		require.NoError(t, p.UseItem())
		assert.True(t, p.Item.IsUsed())

		err = p.UseItem()
		require.Error(t, err)
		assert.True(t, IsCode(err, ErrCodeItemAlreadyUsed))
	})
}

func TestPlayerEliminate(t *testing.T) {
	p := &Player{UserID: 1, Alias: "watari", Alive: true, RoomHost: 10}
	p.Eliminate()
	assert.False(t, p.Alive)
}
