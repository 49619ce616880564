package controllers

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"summoners-school/analytics"
	"summoners-school/apperror"
	"summoners-school/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memCourses keeps courses in memory and counts the calls it receives
type memCourses struct {
	mu      sync.Mutex
	order   []primitive.ObjectID
	courses map[primitive.ObjectID]models.Course
	calls   int
	err     error // returned by every call when set
}

func newMemCourses() *memCourses {
	return &memCourses{courses: map[primitive.ObjectID]models.Course{}}
}

func (m *memCourses) CreateCourse(_ context.Context, course models.Course) (*models.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}

	cleaned, err := models.CourseModel{}.Validate(course)
	if err != nil {
		return nil, err
	}
	cleaned.ID = primitive.NewObjectID()
	m.courses[cleaned.ID] = *cleaned
	m.order = append(m.order, cleaned.ID)
	return cleaned, nil
}

func (m *memCourses) ListCourses(_ context.Context) ([]models.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}

	out := []models.Course{}
	for _, id := range m.order {
		if c, ok := m.courses[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memCourses) GetCourse(_ context.Context, id primitive.ObjectID) (*models.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}

	c, ok := m.courses[id]
	if !ok {
		return nil, apperror.NotFound("Course Not Found")
	}
	return &c, nil
}

func (m *memCourses) UpdateCourse(_ context.Context, id primitive.ObjectID, upd models.CourseUpdate) (*models.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}

	if err := upd.Validate(); err != nil {
		return nil, err
	}
	c, ok := m.courses[id]
	if !ok {
		return nil, apperror.NotFound(fmt.Sprintf("course %s not found", id.Hex()))
	}
	for _, f := range upd.Fields() {
		switch f.Key {
		case "name":
			c.Name = f.Value.(string)
		case "rating":
			c.Rating = f.Value.(float64)
		case "owner.id":
			c.Owner.ID = f.Value.(int64)
		case "owner.name":
			c.Owner.Name = f.Value.(string)
		case "view":
			c.View = f.Value.(int64)
		case "price":
			c.Price = f.Value.(float64)
		case "type":
			c.Type = f.Value.(string)
		}
	}
	m.courses[id] = c
	return &c, nil
}

func (m *memCourses) DeleteCourse(_ context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return m.err
	}

	if _, ok := m.courses[id]; !ok {
		return apperror.NotFound(fmt.Sprintf("course %s not found", id.Hex()))
	}
	delete(m.courses, id)
	return nil
}

func (m *memCourses) SearchCourses(_ context.Context, name string) ([]models.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}

	out := []models.Course{}
	for _, id := range m.order {
		c, ok := m.courses[id]
		if ok && strings.Contains(strings.ToLower(c.Name), strings.ToLower(name)) {
			out = append(out, c)
		}
	}
	return out, nil
}

// memGuides keeps guides in memory
type memGuides struct {
	mu     sync.Mutex
	guides map[primitive.ObjectID]models.Guide
	calls  int
}

func newMemGuides() *memGuides {
	return &memGuides{guides: map[primitive.ObjectID]models.Guide{}}
}

func (m *memGuides) CreateGuide(_ context.Context, guide models.Guide) (*models.Guide, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++

	guide.ID = primitive.NewObjectID()
	m.guides[guide.ID] = guide
	return &guide, nil
}

func (m *memGuides) ListGuides(_ context.Context) ([]models.Guide, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++

	out := []models.Guide{}
	for _, g := range m.guides {
		out = append(out, g)
	}
	return out, nil
}

func (m *memGuides) GetGuide(_ context.Context, id primitive.ObjectID) (*models.Guide, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++

	g, ok := m.guides[id]
	if !ok {
		return nil, apperror.NotFound("Guide Not Found")
	}
	return &g, nil
}

func (m *memGuides) UpdateGuide(_ context.Context, id primitive.ObjectID, upd models.GuideUpdate) (*models.Guide, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++

	g, ok := m.guides[id]
	if !ok {
		return nil, apperror.NotFound(fmt.Sprintf("guide %s not found", id.Hex()))
	}
	if upd.Name != nil {
		g.Name = *upd.Name
	}
	if upd.Champion != nil {
		g.Champion = *upd.Champion
	}
	if upd.Playlist != nil {
		g.Playlist = upd.Playlist
	}
	if upd.Description != nil {
		g.Description = upd.Description
	}
	m.guides[id] = g
	return &g, nil
}

func (m *memGuides) DeleteGuide(_ context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++

	if _, ok := m.guides[id]; !ok {
		return apperror.NotFound(fmt.Sprintf("guide %s not found", id.Hex()))
	}
	delete(m.guides, id)
	return nil
}

func (m *memGuides) SearchGuides(_ context.Context, name string) ([]models.Guide, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++

	out := []models.Guide{}
	for _, g := range m.guides {
		if strings.Contains(strings.ToLower(g.Name), strings.ToLower(name)) {
			out = append(out, g)
		}
	}
	return out, nil
}

// memTracker records visits
type memTracker struct {
	mu     sync.Mutex
	visits []analytics.Visit
	count  int64
	err    error
}

func (t *memTracker) SaveVisitor(_ context.Context, v analytics.Visit) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.visits = append(t.visits, v)
}

func (t *memTracker) GetVisits(_ context.Context, _ string, _ string) (int64, error) {
	return t.count, t.err
}
