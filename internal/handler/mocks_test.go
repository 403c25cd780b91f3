package handler_test

import (
	"context"

	"calltrack/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if user := args.Get(0); user != nil {
		return user.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserStore) GetByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if user := args.Get(0); user != nil {
		return user.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockTagStore struct {
	mock.Mock
}

func (m *MockTagStore) Create(ctx context.Context, tag *model.Tag) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

func (m *MockTagStore) GetAll(ctx context.Context) ([]model.Tag, error) {
	args := m.Called(ctx)
	if tags := args.Get(0); tags != nil {
		return tags.([]model.Tag), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTagStore) GetByID(ctx context.Context, id uint) (*model.Tag, error) {
	args := m.Called(ctx, id)
	if tag := args.Get(0); tag != nil {
		return tag.(*model.Tag), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTagStore) GetByIDs(ctx context.Context, ids []uint) ([]model.Tag, error) {
	args := m.Called(ctx, ids)
	if tags := args.Get(0); tags != nil {
		return tags.([]model.Tag), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTagStore) Update(ctx context.Context, tag *model.Tag) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

func (m *MockTagStore) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCallStore struct {
	mock.Mock
}

func (m *MockCallStore) CreateWithTags(ctx context.Context, call *model.Call, tagIDs []uint) error {
	args := m.Called(ctx, call, tagIDs)
	return args.Error(0)
}

func (m *MockCallStore) GetAll(ctx context.Context) ([]model.Call, error) {
	args := m.Called(ctx)
	if calls := args.Get(0); calls != nil {
		return calls.([]model.Call), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCallStore) GetByID(ctx context.Context, id uint) (*model.Call, error) {
	args := m.Called(ctx, id)
	if call := args.Get(0); call != nil {
		return call.(*model.Call), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCallStore) UpdateWithTags(ctx context.Context, call *model.Call, tagIDs *[]uint) error {
	args := m.Called(ctx, call, tagIDs)
	return args.Error(0)
}

func (m *MockCallStore) AttachTags(ctx context.Context, callID uint, tagIDs []uint) error {
	args := m.Called(ctx, callID, tagIDs)
	return args.Error(0)
}

func (m *MockCallStore) DetachTags(ctx context.Context, callID uint, tagIDs []uint) error {
	args := m.Called(ctx, callID, tagIDs)
	return args.Error(0)
}

func (m *MockCallStore) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTaskStore struct {
	mock.Mock
}

func (m *MockTaskStore) Create(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskStore) GetAll(ctx context.Context) ([]model.Task, error) {
	args := m.Called(ctx)
	if tasks := args.Get(0); tasks != nil {
		return tasks.([]model.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskStore) GetByID(ctx context.Context, id uint) (*model.Task, error) {
	args := m.Called(ctx, id)
	if task := args.Get(0); task != nil {
		return task.(*model.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskStore) GetByCallID(ctx context.Context, callID uint) ([]model.Task, error) {
	args := m.Called(ctx, callID)
	if tasks := args.Get(0); tasks != nil {
		return tasks.([]model.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskStore) Update(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskStore) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
