package controllers

import (
	"context"

	"summoners-school/analytics"
	"summoners-school/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// CourseRepository is implemented by models.CourseModel
type CourseRepository interface {
	CreateCourse(ctx context.Context, course models.Course) (*models.Course, error)
	ListCourses(ctx context.Context) ([]models.Course, error)
	GetCourse(ctx context.Context, id primitive.ObjectID) (*models.Course, error)
	UpdateCourse(ctx context.Context, id primitive.ObjectID, upd models.CourseUpdate) (*models.Course, error)
	DeleteCourse(ctx context.Context, id primitive.ObjectID) error
	SearchCourses(ctx context.Context, name string) ([]models.Course, error)
}

// GuideRepository is implemented by models.GuideModel
type GuideRepository interface {
	CreateGuide(ctx context.Context, guide models.Guide) (*models.Guide, error)
	ListGuides(ctx context.Context) ([]models.Guide, error)
	GetGuide(ctx context.Context, id primitive.ObjectID) (*models.Guide, error)
	UpdateGuide(ctx context.Context, id primitive.ObjectID, upd models.GuideUpdate) (*models.Guide, error)
	DeleteGuide(ctx context.Context, id primitive.ObjectID) error
	SearchGuides(ctx context.Context, name string) ([]models.Guide, error)
}

// VisitTracker is implemented by *analytics.Tracker (nil tracks nothing)
type VisitTracker interface {
	SaveVisitor(ctx context.Context, v analytics.Visit)
	GetVisits(ctx context.Context, domain string, objectID string) (int64, error)
}

// ActiveClients reports the size of the refresh registry (*client.Registry)
type ActiveClients interface {
	Count() int
}

// Pinger checks the storage is reachable
type Pinger func(ctx context.Context) error

// Env is used for dependency-injection (package de-coupling)
type Env struct {
	courseModel CourseRepository
	guideModel  GuideRepository
	tracker     VisitTracker
	clients     ActiveClients
	ping        Pinger
	logger      *zap.Logger
}

// Options lists the dependencies of the handlers; Tracker, Clients and Ping are optional
type Options struct {
	Courses CourseRepository
	Guides  GuideRepository
	Tracker VisitTracker
	Clients ActiveClients
	Ping    Pinger
	Logger  *zap.Logger
}

// NewEnv operates as the constructor of the handler set
func NewEnv(opts Options) *Env {
	env := &Env{
		courseModel: opts.Courses,
		guideModel:  opts.Guides,
		tracker:     opts.Tracker,
		clients:     opts.Clients,
		ping:        opts.Ping,
		logger:      opts.Logger,
	}
	if env.logger == nil {
		env.logger = zap.NewNop()
	}
	if env.tracker == nil {
		env.tracker = (*analytics.Tracker)(nil)
	}
	return env
}
