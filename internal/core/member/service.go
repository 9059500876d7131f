// Copyright (c) 2026 Boardbuddy. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package member

import (
	"context"
	"log/slog"

	"github.com/taibuivan/boardbuddy/internal/platform/apperr"
	"github.com/taibuivan/boardbuddy/internal/platform/constants"
)

// # Service Layer

// Service turns member lookups into API results, mapping absence to NOT_FOUND.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// TopRankings returns the three best ranked members.
func (service *Service) TopRankings(context context.Context) ([]RankingEntry, error) {
	return service.repo.FindTopRanked(context, constants.TopRankingLimit)
}

// MembersByScore returns every member by descending rank score. It is the
// ordering consumed by the external rank assignment job.
func (service *Service) MembersByScore(context context.Context) ([]Member, error) {
	return service.repo.FindAllOrderedByRankScore(context)
}

// Profile returns the public profile of nickname.
func (service *Service) Profile(context context.Context, nickname string) (ProfileInfo, error) {
	profile, found, err := service.repo.FindProfileByNickname(context, nickname)
	if err != nil {
		return ProfileInfo{}, err
	}
	if !found {
		return ProfileInfo{}, apperr.NotFound("Member")
	}
	return profile, nil
}

// MyProfile returns the caller's own profile.
func (service *Service) MyProfile(context context.Context, username string) (MyProfile, error) {
	profile, found, err := service.repo.FindMyProfile(context, username)
	if err != nil {
		return MyProfile{}, err
	}
	if !found {
		return MyProfile{}, apperr.NotFound("Member")
	}
	return profile, nil
}

// Badges returns every badge of nickname, newest first.
func (service *Service) Badges(context context.Context, nickname string) ([]Badge, error) {
	badges, found, err := service.repo.FindBadges(context, nickname)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperr.NotFound("Member")
	}
	return badges, nil
}
