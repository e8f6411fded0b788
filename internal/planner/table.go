package planner

import "github.com/abhisek/drillplan/internal/drills"

// slotProfile is one row of the session decision table.
type slotProfile struct {
	Microcycle string
	Theme      string
	LoadLevel  int
}

// Pre-season rows, selected by week number (index / 2).
var (
	profileAdaptation = slotProfile{
		Microcycle: "Anatomical Adaptation",
		Theme:      "Fundamentals and Progressive Activation",
		LoadLevel:  2,
	}
	profileAccumulation = slotProfile{
		Microcycle: "Load Accumulation",
		Theme:      "Explosive Strength and Basic Tactical Systems",
		LoadLevel:  5,
	}
	profileTransformation = slotProfile{
		Microcycle: "Special Transformation",
		Theme:      "Reaction Speed and Fast Transitions",
		LoadLevel:  4,
	}
)

// Competitive-season rows, selected by weekday.
var (
	profileMondayRecovery = slotProfile{
		Microcycle: "Recovery / Tactical Adjustment",
		Theme:      "Movement Correction and Possession",
		LoadLevel:  3,
	}
	profileWednesdayReadiness = slotProfile{
		Microcycle: "Fine-Tuning / Competitive Readiness",
		Theme:      "Specific Strategies and Set Pieces",
		LoadLevel:  4,
	}
)

// Week boundaries of the pre-season microcycles.
const (
	accumulationStartWeek   = 2
	transformationStartWeek = 6
)

// Category sets per slot, in running order.
var (
	preSeasonCategories = []drills.Category{
		drills.CategoryPhysical, drills.CategoryTechnical, drills.CategoryTactical,
	}
	mondayCategories = []drills.Category{
		drills.CategoryTechnical, drills.CategoryTactical, drills.CategoryGame,
	}
	wednesdayCategories = []drills.Category{
		drills.CategorySetPiece, drills.CategoryTactical, drills.CategoryGame,
	}
)

// positionDurations are the exercise durations in minutes by position.
var positionDurations = []int{15, 25, 30}

// highIntensityLoad is the lowest load level whose exercises run at High.
const highIntensityLoad = 4

func profileFor(preSeason, monday bool, index int) slotProfile {
	if preSeason {
		week := index / 2
		switch {
		case week < accumulationStartWeek:
			return profileAdaptation
		case week < transformationStartWeek:
			return profileAccumulation
		default:
			return profileTransformation
		}
	}
	if monday {
		return profileMondayRecovery
	}
	return profileWednesdayReadiness
}

func categoriesFor(preSeason, monday bool) []drills.Category {
	switch {
	case preSeason:
		return preSeasonCategories
	case monday:
		return mondayCategories
	default:
		return wednesdayCategories
	}
}

func intensityFor(load int) Intensity {
	if load >= highIntensityLoad {
		return IntensityHigh
	}
	return IntensityMedium
}
