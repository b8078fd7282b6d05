package room

import (
	"fmt"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lsgame/roomsvc/internal/domain"
	"github.com/lsgame/roomsvc/internal/infrastructure/lock"
	"github.com/lsgame/roomsvc/internal/infrastructure/logger"
	"github.com/lsgame/roomsvc/internal/infrastructure/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTxStubDB builds a gorm.DB whose transactions are accepted but go
// nowhere. The data access in these tests runs through in-memory
// repositories; only Begin/Commit/Rollback reach the stub.
func newTxStubDB(t *testing.T) *gorm.DB {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.MatchExpectationsInOrder(false)
	for i := 0; i < 256; i++ {
		mock.ExpectBegin()
		mock.ExpectCommit()
		mock.ExpectRollback()
	}

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	require.NoError(t, err)
	return db
}

// *****  In-memory repositories

type memUserRepo struct {
	mu    sync.Mutex
	users map[int64]domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[int64]domain.User{}}
}

func (r *memUserRepo) GetByID(id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := u
	return &cp, nil
}

func (r *memUserRepo) GetByIDForUpdate(id int64) (*domain.User, error) {
	return r.GetByID(id)
}

func (r *memUserRepo) GetByRoomHost(hostID int64) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var members []*domain.User
	for _, u := range r.users {
		if u.RoomHost != nil && *u.RoomHost == hostID {
			cp := u
			members = append(members, &cp)
		}
	}
	return members, nil
}

func (r *memUserRepo) Create(user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = *user
	return nil
}

func (r *memUserRepo) Update(user *domain.User) error {
	return r.Create(user)
}

func (r *memUserRepo) SetRoomHost(userID int64, hostID *int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := r.users[userID]
	if hostID == nil {
		u.RoomHost = nil
	} else {
		h := *hostID
		u.RoomHost = &h
	}
	r.users[userID] = u
	return nil
}

func (r *memUserRepo) ClearRoomHostForRoom(hostID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, u := range r.users {
		if u.RoomHost != nil && *u.RoomHost == hostID {
			u.RoomHost = nil
			r.users[id] = u
		}
	}
	return nil
}

func (r *memUserRepo) MoveRoomMembers(oldHostID, newHostID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, u := range r.users {
		if u.RoomHost != nil && *u.RoomHost == oldHostID {
			h := newHostID
			u.RoomHost = &h
			r.users[id] = u
		}
	}
	return nil
}

func (r *memUserRepo) AwardGameResult(userID int64, won bool, xp int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := r.users[userID]
	u.TotalGames++
	if won {
		u.Wins++
	}
	u.XP += xp
	r.users[userID] = u
	return nil
}

func (r *memUserRepo) WithTransaction(tx *gorm.DB) domain.UserRepository { return r }

type memRoomRepo struct {
	mu    sync.Mutex
	rooms map[int64]domain.Room
}

func newMemRoomRepo() *memRoomRepo {
	return &memRoomRepo{rooms: map[int64]domain.Room{}}
}

func (r *memRoomRepo) GetByHostID(hostID int64) (*domain.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	room, ok := r.rooms[hostID]
	if !ok {
		return nil, nil
	}
	cp := room
	return &cp, nil
}

func (r *memRoomRepo) GetByHostIDForUpdate(hostID int64) (*domain.Room, error) {
	return r.GetByHostID(hostID)
}

func (r *memRoomRepo) Create(room *domain.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rooms[room.HostID] = *room
	return nil
}

func (r *memRoomRepo) Update(room *domain.Room) error {
	return r.Create(room)
}

func (r *memRoomRepo) Delete(hostID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rooms, hostID)
	return nil
}

func (r *memRoomRepo) Count() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.rooms)), nil
}

func (r *memRoomRepo) WithTransaction(tx *gorm.DB) domain.RoomRepository { return r }

type memPlayerRepo struct {
	mu      sync.Mutex
	players map[int64]domain.Player
}

func newMemPlayerRepo() *memPlayerRepo {
	return &memPlayerRepo{players: map[int64]domain.Player{}}
}

func (r *memPlayerRepo) GetByUserID(userID int64) (*domain.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.players[userID]
	if !ok {
		return nil, nil
	}
	cp := p
	return &cp, nil
}

func (r *memPlayerRepo) GetByRoomHost(hostID int64) ([]*domain.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var cast []*domain.Player
	for _, p := range r.players {
		if p.RoomHost == hostID {
			cp := p
			cast = append(cast, &cp)
		}
	}
	return cast, nil
}

func (r *memPlayerRepo) CountByRoomHost(hostID int64) (int64, error) {
	cast, _ := r.GetByRoomHost(hostID)
	return int64(len(cast)), nil
}

func (r *memPlayerRepo) Create(player *domain.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.players[player.UserID] = *player
	return nil
}

func (r *memPlayerRepo) Update(player *domain.Player) error {
	return r.Create(player)
}

func (r *memPlayerRepo) DeleteByRoomHost(hostID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, p := range r.players {
		if p.RoomHost == hostID {
			delete(r.players, id)
		}
	}
	return nil
}

func (r *memPlayerRepo) MoveRoomPlayers(oldHostID, newHostID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, p := range r.players {
		if p.RoomHost == oldHostID {
			p.RoomHost = newHostID
			r.players[id] = p
		}
	}
	return nil
}

func (r *memPlayerRepo) WithTransaction(tx *gorm.DB) domain.PlayerRepository { return r }

type memIdentity struct {
	bots map[int64]bool
}

func (s *memIdentity) ResolveUser(userID int64) (*domain.UserHandle, error) {
	return &domain.UserHandle{
		ID:       userID,
		Username: fmt.Sprintf("user%d", userID),
		IsBot:    s.bots[userID],
	}, nil
}

// *****  Fixture

type membershipFixture struct {
	uc      *RoomUseCase
	users   *memUserRepo
	rooms   *memRoomRepo
	players *memPlayerRepo
}

func newMembershipFixture(t *testing.T) *membershipFixture {
	users := newMemUserRepo()
	rooms := newMemRoomRepo()
	players := newMemPlayerRepo()

	uc := &RoomUseCase{
		roomRepo:    rooms,
		userRepo:    users,
		playerRepo:  players,
		identitySvc: &memIdentity{bots: map[int64]bool{}},
		db:          newTxStubDB(t),
		logger:      logger.NewLogger("test", "debug"),
		locks:       lock.NewUserLockManager(),
		metrics:     metrics.NewMetrics("test"),
	}

	return &membershipFixture{uc: uc, users: users, rooms: rooms, players: players}
}

func (f *membershipFixture) startGameFor(t *testing.T, hostID int64, castIDs ...int64) {
	room, err := f.rooms.GetByHostID(hostID)
	require.NoError(t, err)
	require.NotNil(t, room)
	room.SetGameState(&domain.GameState{Phase: 1, Round: 1, Turn: 1})
	require.NoError(t, f.rooms.Update(room))

	for _, id := range castIDs {
		require.NoError(t, f.players.Create(&domain.Player{
			UserID:   id,
			Alias:    fmt.Sprintf("alias%d", id),
			Alive:    true,
			RoomHost: hostID,
		}))
	}
}

// *****  Precondition matrix

func TestCreateRoomTwiceFailsAlreadyHosting(t *testing.T) {
	f := newMembershipFixture(t)

	info, err := f.uc.CreateRoom(10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), info.Host.ID)
	assert.Equal(t, 1, info.MemberCount)

	_, err = f.uc.CreateRoom(10)
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.ErrCodeAlreadyHosting))
}

func TestCreateRoomWhileMemberFailsAlreadyMember(t *testing.T) {
	f := newMembershipFixture(t)

	_, err := f.uc.CreateRoom(10)
	require.NoError(t, err)
	_, err = f.uc.JoinRoom(20, 10)
	require.NoError(t, err)

	_, err = f.uc.CreateRoom(20)
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.ErrCodeAlreadyMember))
}

func TestJoinWhileHostingFailsHostConflict(t *testing.T) {
	f := newMembershipFixture(t)

	_, err := f.uc.CreateRoom(10)
	require.NoError(t, err)
	_, err = f.uc.CreateRoom(20)
	require.NoError(t, err)

	_, err = f.uc.JoinRoom(20, 10)
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.ErrCodeHostConflict))

	// joining one's own room while hosting it reads the same way
	_, err = f.uc.JoinRoom(10, 10)
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.ErrCodeHostConflict))
}

func TestJoinMissingRoomFailsNotFound(t *testing.T) {
	f := newMembershipFixture(t)

	_, err := f.uc.JoinRoom(20, 10)
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.ErrCodeRoomNotFound))
}

func TestJoinRoomWithGameInProgress(t *testing.T) {
	f := newMembershipFixture(t)

	_, err := f.uc.CreateRoom(10)
	require.NoError(t, err)
	f.startGameFor(t, 10, 10)

	_, err = f.uc.JoinRoom(20, 10)
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.ErrCodeGameInProgress))
}

func TestLeaveAsHostFailsHostConflict(t *testing.T) {
	f := newMembershipFixture(t)

	_, err := f.uc.CreateRoom(10)
	require.NoError(t, err)

	err = f.uc.LeaveRoom(10)
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.ErrCodeHostConflict))
}

func TestLeaveUnaffiliatedFailsNotInRoom(t *testing.T) {
	f := newMembershipFixture(t)

	err := f.uc.LeaveRoom(99)
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.ErrCodeNotInRoom))
}

func TestLeaveDuringGame(t *testing.T) {
	f := newMembershipFixture(t)

	_, err := f.uc.CreateRoom(10)
	require.NoError(t, err)
	_, err = f.uc.JoinRoom(20, 10)
	require.NoError(t, err)
	_, err = f.uc.JoinRoom(30, 10)
	require.NoError(t, err)

	// game starts with 10 and 20 in the cast; 30 merely watches
	f.startGameFor(t, 10, 10, 20)

	// a host in a running cast is told about the game, not the host seat
	err = f.uc.LeaveRoom(10)
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.ErrCodeAlreadyInGame))

	err = f.uc.LeaveRoom(20)
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.ErrCodeAlreadyInGame))

	// members outside the cast are free to go
	require.NoError(t, f.uc.LeaveRoom(30))
}

// *****  Lifecycle scenario

func TestMembershipLifecycleScenario(t *testing.T) {
	f := newMembershipFixture(t)

	_, err := f.uc.CreateRoom(10)
	require.NoError(t, err)

	info, err := f.uc.GetRoomInfo(10, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(10), info.Host.ID)
	assert.Equal(t, 1, info.MemberCount)

	joined, err := f.uc.JoinRoom(20, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, joined.MemberCount)

	info, err = f.uc.GetRoomInfo(20, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(10), info.Host.ID)

	require.NoError(t, f.uc.LeaveRoom(20))

	_, err = f.uc.GetRoomInfo(20, nil)
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.ErrCodeNotInRoom))

	user, err := f.users.GetByID(20)
	require.NoError(t, err)
	assert.Nil(t, user.RoomHost)
}

func TestTransferThenDelete(t *testing.T) {
	f := newMembershipFixture(t)

	_, err := f.uc.CreateRoom(10)
	require.NoError(t, err)
	_, err = f.uc.JoinRoom(20, 10)
	require.NoError(t, err)

	info, err := f.uc.TransferHost(10, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(20), info.Host.ID)
	assert.Equal(t, 2, info.MemberCount)

	// the old host is now a plain member of the re-keyed room
	info, err = f.uc.GetRoomInfo(10, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(20), info.Host.ID)

	require.NoError(t, f.uc.DeleteRoom(20))

	_, err = f.uc.GetRoomInfo(10, nil)
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.ErrCodeNotInRoom))
	_, err = f.uc.GetRoomInfo(20, nil)
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.ErrCodeNotInRoom))
}

// *****  Concurrency

func TestConcurrentJoinsSameUserExactlyOneSucceeds(t *testing.T) {
	f := newMembershipFixture(t)

	_, err := f.uc.CreateRoom(10)
	require.NoError(t, err)
	_, err = f.uc.CreateRoom(20)
	require.NoError(t, err)

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	wg.Add(2)
	for _, hostID := range []int64{10, 20} {
		go func(hostID int64) {
			defer wg.Done()
			_, err := f.uc.JoinRoom(30, hostID)
			errs <- err
		}(hostID)
	}
	wg.Wait()
	close(errs)

	var successes, conflicts int
	for err := range errs {
		if err == nil {
			successes++
			continue
		}
		assert.True(t, domain.IsCode(err, domain.ErrCodeAlreadyMember), "unexpected error: %v", err)
		conflicts++
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, conflicts)

	user, err := f.users.GetByID(30)
	require.NoError(t, err)
	require.NotNil(t, user.RoomHost)
	assert.Contains(t, []int64{10, 20}, *user.RoomHost)
}
