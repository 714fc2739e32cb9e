package profile

import (
	"context"
	"time"
)

type repoMock struct {
	profiles map[int]*UserProfile
	nextID   int

	// injectable failures for sync tests
	getErr    error
	updateErr error
}

func NewMockProfileRepo() *repoMock {
	return &repoMock{
		profiles: make(map[int]*UserProfile),
		nextID:   1,
	}
}

func (r *repoMock) Add(_ context.Context, p UserProfile) (*UserProfile, error) {
	for _, existing := range r.profiles {
		if existing.Username == p.Username {
			return nil, ErrUsernameTaken
		}
	}
	p.ID = r.nextID
	r.nextID++
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	r.profiles[p.ID] = &p
	return &p, nil
}

func (r *repoMock) Get(_ context.Context, userID int) (*UserProfile, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	p, ok := r.profiles[userID]
	if !ok {
		return nil, ErrProfileNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *repoMock) GetByUsername(_ context.Context, username string) (*UserProfile, error) {
	for _, p := range r.profiles {
		if p.Username == username {
			cp := *p
			return &cp, nil
		}
	}
	return nil, ErrProfileNotFound
}

func (r *repoMock) Update(_ context.Context, p *UserProfile) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.profiles[p.ID]; !ok {
		return ErrProfileNotFound
	}
	cp := *p
	cp.UpdatedAt = time.Now()
	r.profiles[p.ID] = &cp
	return nil
}

func (r *repoMock) Delete(_ context.Context, userID int) error {
	if _, ok := r.profiles[userID]; !ok {
		return ErrProfileNotFound
	}
	delete(r.profiles, userID)
	return nil
}
