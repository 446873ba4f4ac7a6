// Package mocks provides testify mocks for store and collaborator
// contracts defined in the model package.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/portfolio-server/internal/model"
)

// UserStore is a mock model.UserStore.
type UserStore struct {
	mock.Mock
}

func (m *UserStore) Create(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) GetByResetHash(ctx context.Context, hash string) (model.User, error) {
	args := m.Called(ctx, hash)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) UpdateProfile(ctx context.Context, id uuid.UUID, update model.ProfileUpdate) (model.User, error) {
	args := m.Called(ctx, id, update)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *UserStore) SetResetState(ctx context.Context, id uuid.UUID, state model.ResetState) error {
	args := m.Called(ctx, id, state)
	return args.Error(0)
}

// ProjectStore is a mock model.ProjectStore.
type ProjectStore struct {
	mock.Mock
}

func (m *ProjectStore) Create(ctx context.Context, project model.Project) (model.Project, error) {
	args := m.Called(ctx, project)
	return args.Get(0).(model.Project), args.Error(1)
}

func (m *ProjectStore) GetByID(ctx context.Context, id uuid.UUID) (model.Project, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Project), args.Error(1)
}

func (m *ProjectStore) GetAll(ctx context.Context) ([]model.Project, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *ProjectStore) Update(ctx context.Context, project model.Project) (model.Project, error) {
	args := m.Called(ctx, project)
	return args.Get(0).(model.Project), args.Error(1)
}

func (m *ProjectStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// SkillStore is a mock model.SkillStore.
type SkillStore struct {
	mock.Mock
}

func (m *SkillStore) Create(ctx context.Context, skill model.Skill) (model.Skill, error) {
	args := m.Called(ctx, skill)
	return args.Get(0).(model.Skill), args.Error(1)
}

func (m *SkillStore) GetByID(ctx context.Context, id uuid.UUID) (model.Skill, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Skill), args.Error(1)
}

func (m *SkillStore) GetAll(ctx context.Context) ([]model.Skill, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Skill), args.Error(1)
}

func (m *SkillStore) UpdateProficiency(ctx context.Context, id uuid.UUID, proficiency string) (model.Skill, error) {
	args := m.Called(ctx, id, proficiency)
	return args.Get(0).(model.Skill), args.Error(1)
}

func (m *SkillStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// TimelineStore is a mock model.TimelineStore.
type TimelineStore struct {
	mock.Mock
}

func (m *TimelineStore) Create(ctx context.Context, entry model.TimelineEntry) (model.TimelineEntry, error) {
	args := m.Called(ctx, entry)
	return args.Get(0).(model.TimelineEntry), args.Error(1)
}

func (m *TimelineStore) GetAll(ctx context.Context) ([]model.TimelineEntry, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.TimelineEntry), args.Error(1)
}

func (m *TimelineStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ApplicationStore is a mock model.ApplicationStore.
type ApplicationStore struct {
	mock.Mock
}

func (m *ApplicationStore) Create(ctx context.Context, app model.SoftwareApplication) (model.SoftwareApplication, error) {
	args := m.Called(ctx, app)
	return args.Get(0).(model.SoftwareApplication), args.Error(1)
}

func (m *ApplicationStore) GetByID(ctx context.Context, id uuid.UUID) (model.SoftwareApplication, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.SoftwareApplication), args.Error(1)
}

func (m *ApplicationStore) GetAll(ctx context.Context) ([]model.SoftwareApplication, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.SoftwareApplication), args.Error(1)
}

func (m *ApplicationStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MessageStore is a mock model.MessageStore.
type MessageStore struct {
	mock.Mock
}

func (m *MessageStore) Create(ctx context.Context, message model.Message) (model.Message, error) {
	args := m.Called(ctx, message)
	return args.Get(0).(model.Message), args.Error(1)
}

func (m *MessageStore) GetAll(ctx context.Context) ([]model.Message, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Message), args.Error(1)
}

func (m *MessageStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
