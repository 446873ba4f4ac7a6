package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/portfolio-server/internal/apperr"
	"github.com/dtroode/portfolio-server/internal/mocks"
	"github.com/dtroode/portfolio-server/internal/model"
	"github.com/dtroode/portfolio-server/internal/testutil"
)

func TestProject_Add_Success(t *testing.T) {
	ctx := context.Background()
	store := &mocks.ProjectStore{}
	media := &mocks.MediaStorage{}

	media.On("Upload", mock.Anything, "project-banners", mock.Anything).
		Return(model.MediaRef{ID: "project-banners/b.png", URL: "http://media/project-banners/b.png"}, nil)
	store.On("Create", mock.Anything, mock.MatchedBy(func(p model.Project) bool {
		return p.Title == "taskboard" && p.Banner.ID == "project-banners/b.png"
	})).Return(model.Project{ID: uuid.New(), Title: "taskboard"}, nil)

	s := NewProject(store, media, testutil.MakeNoopLogger())

	project, err := s.Add(ctx, ProjectInput{
		Title:       "taskboard",
		Description: "kanban board",
		Banner:      testFile("banner.png"),
	})
	require.NoError(t, err)
	assert.Equal(t, "taskboard", project.Title)
	store.AssertExpectations(t)
}

func TestProject_Add_MissingBanner(t *testing.T) {
	s := NewProject(&mocks.ProjectStore{}, &mocks.MediaStorage{}, testutil.MakeNoopLogger())

	_, err := s.Add(context.Background(), ProjectInput{Title: "taskboard"})
	apiErr, ok := apperr.FromError(err)
	require.True(t, ok)
	assert.Equal(t, 400, apiErr.Status)
}

func TestProject_Update_KeepsUnsetFields(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	store := &mocks.ProjectStore{}

	store.On("GetByID", mock.Anything, id).Return(model.Project{
		ID:          id,
		Title:       "taskboard",
		Description: "kanban board",
	}, nil)
	store.On("Update", mock.Anything, mock.MatchedBy(func(p model.Project) bool {
		// Empty input fields keep their stored values.
		return p.Title == "boards" && p.Description == "kanban board"
	})).Return(model.Project{ID: id, Title: "boards", Description: "kanban board"}, nil)

	s := NewProject(store, &mocks.MediaStorage{}, testutil.MakeNoopLogger())

	project, err := s.Update(ctx, id, ProjectInput{Title: "boards"})
	require.NoError(t, err)
	assert.Equal(t, "kanban board", project.Description)
	store.AssertExpectations(t)
}

func TestProject_Delete_BannerDeleteFailure_NotFatal(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	store := &mocks.ProjectStore{}
	media := &mocks.MediaStorage{}

	store.On("GetByID", mock.Anything, id).Return(model.Project{
		ID:     id,
		Banner: model.MediaRef{ID: "project-banners/b.png"},
	}, nil)
	media.On("Delete", mock.Anything, "project-banners/b.png").Return(errors.New("gone"))
	store.On("Delete", mock.Anything, id).Return(nil)

	s := NewProject(store, media, testutil.MakeNoopLogger())

	require.NoError(t, s.Delete(ctx, id))
	store.AssertExpectations(t)
}

func TestProject_Get_NotFound(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	store := &mocks.ProjectStore{}
	store.On("GetByID", mock.Anything, id).Return(model.Project{}, model.ErrNotFound)

	s := NewProject(store, &mocks.MediaStorage{}, testutil.MakeNoopLogger())

	_, err := s.Get(ctx, id)
	apiErr, ok := apperr.FromError(err)
	require.True(t, ok)
	assert.Equal(t, 404, apiErr.Status)
}
