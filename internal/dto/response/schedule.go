package response

import "petconnect/internal/data/entity"

type Schedule struct {
	ID        string `json:"id"`
	WalkerID  string `json:"walkerId"`
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsActive  bool   `json:"isActive"`
}

func FromSchedule(schedule *entity.Schedule) Schedule {
	return Schedule{
		ID:        schedule.ID.String(),
		WalkerID:  schedule.WalkerID.String(),
		DayOfWeek: schedule.DayOfWeek,
		StartTime: schedule.StartTime,
		EndTime:   schedule.EndTime,
		IsActive:  schedule.IsActive,
	}
}

func FromSchedules(schedules []*entity.Schedule) []Schedule {
	out := make([]Schedule, 0, len(schedules))
	for _, schedule := range schedules {
		out = append(out, FromSchedule(schedule))
	}
	return out
}
