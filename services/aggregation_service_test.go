package services

import (
	"testing"
	"time"

	"github.com/KevinWehrle/budgetmacro-78bf3b04/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func entryAt(t time.Time, calories, protein int, cost string) models.FoodLog {
	return models.FoodLog{
		Model:    gorm.Model{CreatedAt: t},
		Calories: calories,
		Protein:  protein,
		Cost:     decimal.RequireFromString(cost),
	}
}

func TestSumEntries(t *testing.T) {
	now := time.Now()
	entries := []models.FoodLog{
		entryAt(now, 500, 30, "1.00"),
		entryAt(now, 300, 20, "2.50"),
		entryAt(now, 200, 10, "3.25"),
	}

	got := SumEntries(entries)

	if got.Calories != 1000 {
		t.Fatalf("calories = %d, want 1000", got.Calories)
	}
	if got.Protein != 60 {
		t.Fatalf("protein = %d, want 60", got.Protein)
	}
	if !got.Cost.Equal(decimal.RequireFromString("6.75")) {
		t.Fatalf("cost = %s, want 6.75", got.Cost)
	}
}

func TestSumEntriesEmpty(t *testing.T) {
	got := SumEntries(nil)
	if got.Calories != 0 || got.Protein != 0 || !got.Cost.Equal(decimal.Zero) {
		t.Fatalf("empty sum = %+v, want zeros", got)
	}
}

func TestDayStart(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	at := time.Date(2026, 3, 14, 23, 59, 59, 0, loc)

	got := DayStart(at)
	want := time.Date(2026, 3, 14, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Fatalf("DayStart = %v, want %v", got, want)
	}
	if got.Location() != loc {
		t.Fatalf("DayStart changed the location to %v", got.Location())
	}
}

func TestSameLocalDayAroundMidnight(t *testing.T) {
	loc := time.UTC
	lateNight := time.Date(2026, 3, 14, 23, 59, 59, 0, loc)
	justAfter := time.Date(2026, 3, 15, 0, 0, 1, 0, loc)
	sameEvening := time.Date(2026, 3, 14, 19, 30, 0, 0, loc)

	if SameLocalDay(lateNight, justAfter) {
		t.Fatal("23:59:59 and 00:00:01 next day must be different days")
	}
	if !SameLocalDay(lateNight, sameEvening) {
		t.Fatal("two instants on the same evening must be the same day")
	}
}

func TestBucketByDaySplitsAtMidnight(t *testing.T) {
	loc := time.UTC
	lateNight := time.Date(2026, 3, 14, 23, 59, 59, 0, loc)
	justAfter := time.Date(2026, 3, 15, 0, 0, 1, 0, loc)

	entries := []models.FoodLog{
		entryAt(justAfter, 100, 5, "1.00"),
		entryAt(lateNight, 400, 25, "4.00"),
	}

	buckets, days := BucketByDay(entries)

	if len(days) != 2 {
		t.Fatalf("got %d buckets, want 2", len(days))
	}
	if !days[0].Before(days[1]) {
		t.Fatalf("days not sorted ascending: %v", days)
	}

	first := SumEntries(buckets[days[0]])
	if first.Calories != 400 {
		t.Fatalf("earlier day calories = %d, want 400", first.Calories)
	}
	second := SumEntries(buckets[days[1]])
	if second.Calories != 100 {
		t.Fatalf("later day calories = %d, want 100", second.Calories)
	}
}

func TestBucketByDayGroupsWithinDay(t *testing.T) {
	loc := time.UTC
	morning := time.Date(2026, 3, 14, 8, 0, 0, 0, loc)
	evening := time.Date(2026, 3, 14, 20, 15, 0, 0, loc)

	buckets, days := BucketByDay([]models.FoodLog{
		entryAt(morning, 300, 20, "2.00"),
		entryAt(evening, 600, 40, "5.50"),
	})

	if len(days) != 1 {
		t.Fatalf("got %d buckets, want 1", len(days))
	}
	sums := SumEntries(buckets[days[0]])
	if sums.Calories != 900 || sums.Protein != 60 {
		t.Fatalf("day sums = %+v, want 900 cal / 60 g", sums)
	}
	if !sums.Cost.Equal(decimal.RequireFromString("7.50")) {
		t.Fatalf("day cost = %s, want 7.50", sums.Cost)
	}
}
