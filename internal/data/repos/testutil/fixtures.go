package testutil

import (
	"context"
	"testing"

	"gorm.io/gorm"

	types "github.com/yungbote/missions-backend/internal/domain"
)

func SeedScientist(tb testing.TB, ctx context.Context, tx *gorm.DB, name, field string) *types.Scientist {
	tb.Helper()
	s := &types.Scientist{Name: name, FieldOfStudy: field}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed scientist: %v", err)
	}
	return s
}

func SeedPlanet(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, distance int, star string) *types.Planet {
	tb.Helper()
	p := &types.Planet{Name: name, DistanceFromEarth: distance, NearestStar: star}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed planet: %v", err)
	}
	return p
}

func SeedMission(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, scientistID, planetID uint) *types.Mission {
	tb.Helper()
	m := &types.Mission{Name: name, ScientistID: scientistID, PlanetID: planetID}
	if err := tx.WithContext(ctx).Create(m).Error; err != nil {
		tb.Fatalf("seed mission: %v", err)
	}
	return m
}
