package core

import (
	"sort"
	"time"
)

// RecentHistoryLimit bounds how many recent entries an aggregation considers.
const RecentHistoryLimit = 100

// trendDays is the fixed number of daily trend buckets, ending today.
const trendDays = 7

// moodScores is the ordinal weighting used to average a mood history. Moods
// outside the table score zero.
var moodScores = map[Mood]float64{
	MoodHappy:      5,
	MoodEnergetic:  4,
	MoodPeaceful:   3,
	MoodCalm:       2,
	MoodReflective: 1,
	MoodSad:        0,
}

// Summarize aggregates a mood history into distribution counts, a dominant
// average mood and seven daily trend buckets ending today. Only the most
// recent RecentHistoryLimit entries count.
func Summarize(entries []MoodHistoryEntry) *MoodStats {
	return summarizeAt(entries, time.Now())
}

func summarizeAt(entries []MoodHistoryEntry, now time.Time) *MoodStats {
	recent := make([]MoodHistoryEntry, len(entries))
	copy(recent, entries)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Timestamp.After(recent[j].Timestamp)
	})
	if len(recent) > RecentHistoryLimit {
		recent = recent[:RecentHistoryLimit]
	}

	distribution := make(map[Mood]int)
	var totalScore float64
	for _, entry := range recent {
		distribution[entry.Mood]++
		totalScore += moodScores[entry.Mood]
	}

	averageScore := 0.0
	if len(recent) > 0 {
		averageScore = totalScore / float64(len(recent))
	}

	var averageMood Mood
	switch {
	case averageScore >= 4:
		averageMood = MoodHappy
	case averageScore >= 2.5:
		averageMood = MoodPeaceful
	case averageScore >= 1:
		averageMood = MoodCalm
	default:
		averageMood = MoodReflective
	}

	trends := make([]TrendBucket, 0, trendDays)
	for i := trendDays - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		dayEnd := dayStart.Add(24*time.Hour - time.Millisecond)

		counts := make(map[Mood]int)
		events := 0
		for _, entry := range recent {
			if entry.Timestamp.Before(dayStart) || entry.Timestamp.After(dayEnd) {
				continue
			}
			counts[entry.Mood]++
			events++
		}

		trends = append(trends, TrendBucket{
			Date:        dayStart.Format("2006-01-02"),
			MoodCounts:  counts,
			TotalEvents: events,
		})
	}

	return &MoodStats{
		TotalMoods:       len(recent),
		MoodDistribution: distribution,
		WeeklyTrends:     trends,
		AverageMood:      averageMood,
	}
}

// MoodForValence maps a signed valence score onto the history mood
// vocabulary. Scores near zero read as peaceful rather than neutral.
func MoodForValence(score int) Mood {
	switch {
	case score > 3:
		return MoodHappy
	case score > 1:
		return MoodCalm
	case score < -3:
		return MoodSad
	case score < -1:
		return MoodReflective
	default:
		return MoodPeaceful
	}
}
