package trainingdays

import (
	"context"
	"sort"
	"sync"
)

type repoMock struct {
	mutex sync.Mutex
	days  map[string]*TrainingDay
}

func NewMockRepo() *repoMock {
	return &repoMock{
		days: make(map[string]*TrainingDay),
	}
}

func (r *repoMock) Get(_ context.Context, date Date) (*TrainingDay, error) {
	day, ok := r.days[date.String()]
	if !ok {
		return nil, ErrTrainingDayNotFound
	}
	dayCopy := *day
	return &dayCopy, nil
}

func (r *repoMock) GetLatest(_ context.Context) (*TrainingDay, error) {
	return r.latest(func(*TrainingDay) bool { return true })
}

func (r *repoMock) GetLatestCompleted(_ context.Context) (*TrainingDay, error) {
	return r.latest(func(day *TrainingDay) bool { return day.Completed })
}

func (r *repoMock) Insert(_ context.Context, day TrainingDay) (*TrainingDay, error) {
	if _, ok := r.days[day.Date.String()]; ok {
		return nil, ErrTrainingDayExists
	}
	r.days[day.Date.String()] = &day
	return &day, nil
}

func (r *repoMock) SetCompleted(_ context.Context, date Date) error {
	day, ok := r.days[date.String()]
	if !ok {
		return ErrTrainingDayNotFound
	}
	day.Completed = true
	return nil
}

func (r *repoMock) ListAll(_ context.Context) ([]TrainingDay, error) {
	days := make([]TrainingDay, 0, len(r.days))
	for _, day := range r.days {
		days = append(days, *day)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})
	return days, nil
}

func (r *repoMock) InTx(_ context.Context, fn func(r Repo) error) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return fn(r)
}

func (r *repoMock) latest(match func(*TrainingDay) bool) (*TrainingDay, error) {
	var found *TrainingDay
	for _, day := range r.days {
		if !match(day) {
			continue
		}
		if found == nil || found.Date.Before(day.Date) {
			found = day
		}
	}
	if found == nil {
		return nil, ErrTrainingDayNotFound
	}
	foundCopy := *found
	return &foundCopy, nil
}
