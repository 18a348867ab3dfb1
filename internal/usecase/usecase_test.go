package usecase_test

import (
	"context"
	"time"

	"go-talent-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories
type MockTalentRepo struct {
	mock.Mock
}

func (m *MockTalentRepo) FetchPool(ctx context.Context, filter domain.HardFilter) ([]domain.Talent, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Talent), args.Error(1)
}

func (m *MockTalentRepo) GetByID(ctx context.Context, id string) (*domain.Talent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Talent), args.Error(1)
}

func (m *MockTalentRepo) GetFilterValues(ctx context.Context) (*domain.RawFilterValues, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RawFilterValues), args.Error(1)
}

type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) RecordSearch(position string, poolSize, matched int, dropped map[string]int, elapsed time.Duration) {
	m.Called(position, poolSize, matched, dropped, elapsed)
}

func (m *MockRecorder) RecordSearchError(stage string) {
	m.Called(stage)
}

func (m *MockRecorder) RecordExport(format string) {
	m.Called(format)
}

type MockArchiver struct {
	mock.Mock
}

func (m *MockArchiver) Archive(ctx context.Context, requester, filename, contentType string, data []byte) (string, error) {
	args := m.Called(ctx, requester, filename, contentType, data)
	return args.String(0), args.Error(1)
}

var refNow = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return refNow }

func samplePool() []domain.Talent {
	return []domain.Talent{
		{
			ID:                  "t-1",
			FullName:            "Ayu Lestari",
			City:                "Jakarta",
			EducationLevel:      domain.EducationMasters,
			Department:          "Computer Science",
			ShortBio:            "Backend engineer who builds Go microservices",
			Skills:              "Go, PostgreSQL, Docker",
			Languages:           "English, Indonesian",
			GithubProfile:       "https://github.com/ayu",
			ProfileCompleteness: 90,
			CreatedAt:           refNow.AddDate(0, -2, 0),
			Projects: []domain.Project{
				{ID: "p-1", Title: "Job queue in Go", Technologies: "Go, Redis", ProjectType: domain.ProjectTypeOpenSource},
			},
			WorkExperiences: []domain.WorkExperience{
				{CompanyName: "Tokopedia", Position: "Backend Engineer", StartDate: refNow.AddDate(-3, 0, 0), IsCurrent: true, WorkType: domain.WorkTypeFullTime},
			},
		},
		{
			ID:                  "t-2",
			FullName:            "Budi Santoso",
			City:                "Jakarta",
			EducationLevel:      domain.EducationUniversity,
			Skills:              "React, TypeScript",
			Languages:           "Indonesian",
			ProfileCompleteness: 50,
			CreatedAt:           refNow.AddDate(0, -1, 0),
		},
	}
}
