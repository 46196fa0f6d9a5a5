package hotel

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/retry"
)

type MockHotelRepository struct {
	mock.Mock
}

func (m *MockHotelRepository) Create(ctx context.Context, h *domain.Hotel) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *MockHotelRepository) GetByName(ctx context.Context, name string) (*domain.Hotel, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hotel), args.Error(1)
}

func (m *MockHotelRepository) List(ctx context.Context) ([]domain.Hotel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Hotel), args.Error(1)
}

type MockNightIndex struct {
	mock.Mock
}

func (m *MockNightIndex) BookedRoomIDs(ctx context.Context, roomIDs []int64, from, to domain.Date) ([]int64, error) {
	args := m.Called(ctx, roomIDs, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func instantPolicy() retry.Policy {
	p := retry.Default(nil)
	p.Sleep = func(ctx context.Context, d time.Duration) error { return nil }
	return p
}

func sampleHotel() *domain.Hotel {
	return &domain.Hotel{
		Name: "Central",
		Rooms: []domain.Room{
			{ID: 1, Name: "101", Type: domain.RoomSingle, Capacity: 1},
			{ID: 2, Name: "102", Type: domain.RoomDouble, Capacity: 2},
			{ID: 3, Name: "103", Type: domain.RoomDeluxe, Capacity: 2},
		},
	}
}

func TestCreateHotel_Success(t *testing.T) {
	mockHotels := new(MockHotelRepository)
	mockNights := new(MockNightIndex)
	svc := NewService(mockHotels, mockNights, instantPolicy())

	h := sampleHotel()
	mockHotels.On("GetByName", mock.Anything, "Central").Return(nil, gorm.ErrRecordNotFound)
	mockHotels.On("Create", mock.Anything, h).Return(nil)

	err := svc.CreateHotel(context.Background(), h)

	require.NoError(t, err)
	mockHotels.AssertNumberOfCalls(t, "Create", 1)
}

func TestCreateHotel_DuplicateName(t *testing.T) {
	mockHotels := new(MockHotelRepository)
	mockNights := new(MockNightIndex)
	svc := NewService(mockHotels, mockNights, instantPolicy())

	mockHotels.On("GetByName", mock.Anything, "Central").Return(sampleHotel(), nil)

	err := svc.CreateHotel(context.Background(), sampleHotel())

	assert.ErrorIs(t, err, ErrHotelExists)
	mockHotels.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateHotel_LosingTheRaceConvergesToConflict(t *testing.T) {
	mockHotels := new(MockHotelRepository)
	mockNights := new(MockNightIndex)
	svc := NewService(mockHotels, mockNights, instantPolicy())

	// pre-insert check misses, the insert loses the race, and the retry's
	// pre-insert check then finds the winner's row
	mockHotels.On("GetByName", mock.Anything, "Central").Return(nil, gorm.ErrRecordNotFound).Once()
	mockHotels.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey).Once()
	mockHotels.On("GetByName", mock.Anything, "Central").Return(sampleHotel(), nil).Once()

	err := svc.CreateHotel(context.Background(), sampleHotel())

	assert.ErrorIs(t, err, ErrHotelExists)
	mockHotels.AssertNumberOfCalls(t, "Create", 1)
}

func TestCreateHotel_Validation(t *testing.T) {
	mockHotels := new(MockHotelRepository)
	mockNights := new(MockNightIndex)
	svc := NewService(mockHotels, mockNights, instantPolicy())

	assert.ErrorIs(t, svc.CreateHotel(context.Background(), &domain.Hotel{Name: ""}), ErrValidation)
	assert.ErrorIs(t, svc.CreateHotel(context.Background(), &domain.Hotel{Name: "Empty"}), ErrValidation)
	assert.ErrorIs(t, svc.CreateHotel(context.Background(), &domain.Hotel{
		Name:  "BadRoom",
		Rooms: []domain.Room{{Name: "101", Type: domain.RoomSingle, Capacity: 0}},
	}), ErrValidation)
	mockHotels.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFindAvailableRooms_InvalidRange(t *testing.T) {
	mockHotels := new(MockHotelRepository)
	mockNights := new(MockNightIndex)
	svc := NewService(mockHotels, mockNights, instantPolicy())

	d := domain.NewDate(2025, time.November, 7)

	_, err := svc.FindAvailableRooms(context.Background(), "Central", d, d, nil)
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = svc.FindAvailableRooms(context.Background(), "Central", d, d.AddDays(-1), nil)
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestFindAvailableRooms_HotelNotFound(t *testing.T) {
	mockHotels := new(MockHotelRepository)
	mockNights := new(MockNightIndex)
	svc := NewService(mockHotels, mockNights, instantPolicy())

	mockHotels.On("GetByName", mock.Anything, "Nowhere").Return(nil, gorm.ErrRecordNotFound)

	d := domain.NewDate(2025, time.November, 7)
	_, err := svc.FindAvailableRooms(context.Background(), "Nowhere", d, d.AddDays(1), nil)

	assert.ErrorIs(t, err, ErrHotelNotFound)
}

func TestFindAvailableRooms_ExcludesBookedAndKeepsOrder(t *testing.T) {
	mockHotels := new(MockHotelRepository)
	mockNights := new(MockNightIndex)
	svc := NewService(mockHotels, mockNights, instantPolicy())

	d := domain.NewDate(2025, time.November, 7)
	mockHotels.On("GetByName", mock.Anything, "Central").Return(sampleHotel(), nil)
	mockNights.On("BookedRoomIDs", mock.Anything, []int64{1, 2, 3}, d, d.AddDays(2)).
		Return([]int64{2}, nil)

	rooms, err := svc.FindAvailableRooms(context.Background(), "Central", d, d.AddDays(2), nil)

	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "101", rooms[0].Name)
	assert.Equal(t, "103", rooms[1].Name)
}

func TestFindAvailableRooms_CapacityFilterOnlyWhenRequested(t *testing.T) {
	mockHotels := new(MockHotelRepository)
	mockNights := new(MockNightIndex)
	svc := NewService(mockHotels, mockNights, instantPolicy())

	d := domain.NewDate(2025, time.November, 7)
	mockHotels.On("GetByName", mock.Anything, "Central").Return(sampleHotel(), nil)
	// only the capacity >= 2 rooms are even looked up
	mockNights.On("BookedRoomIDs", mock.Anything, []int64{2, 3}, d, d.AddDays(1)).
		Return([]int64{}, nil)

	two := 2
	rooms, err := svc.FindAvailableRooms(context.Background(), "Central", d, d.AddDays(1), &two)

	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "102", rooms[0].Name)
	assert.Equal(t, "103", rooms[1].Name)
}
