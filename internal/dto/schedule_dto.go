package dto

import "attendra/internal/entity"

type ScheduleResponse struct {
	ID             string `json:"id"`
	SubjectCode    string `json:"subject_code"`
	SubjectName    string `json:"subject_name"`
	InstructorName string `json:"instructor_name,omitempty"`
	YearLevel      string `json:"year_level"`
	Section        string `json:"section"`
	Courses        string `json:"courses"`
	DayOfWeek      string `json:"day_of_week"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	Room           string `json:"room,omitempty"`
}

func ScheduleResponseFromEntity(schedule *entity.Schedule) ScheduleResponse {
	response := ScheduleResponse{
		ID:          schedule.ID.String(),
		SubjectCode: schedule.SubjectCode,
		SubjectName: schedule.SubjectName,
		YearLevel:   schedule.YearLevel,
		Section:     schedule.Section,
		Courses:     schedule.Courses,
		DayOfWeek:   schedule.DayOfWeek,
		StartTime:   schedule.StartTime,
		EndTime:     schedule.EndTime,
		Room:        schedule.Room,
	}
	if schedule.Instructor != nil {
		response.InstructorName = schedule.Instructor.FullName
	}
	return response
}

func ScheduleResponsesFromEntities(schedules []entity.Schedule) []ScheduleResponse {
	responses := make([]ScheduleResponse, 0, len(schedules))
	for i := range schedules {
		responses = append(responses, ScheduleResponseFromEntity(&schedules[i]))
	}
	return responses
}
