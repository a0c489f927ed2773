package seed

import (
	"log/slog"
	"time"

	"github.com/russelescultura/sk-barangay-sub001/internal/calendar"
	"github.com/russelescultura/sk-barangay-sub001/internal/domain"
	"github.com/russelescultura/sk-barangay-sub001/internal/repository"
)

// SeedSampleData loads a small, realistic barangay data set: a couple of
// recurring programs, standalone events, and forms with deadlines around the
// current date so the calendar and notification views have content.
func SeedSampleData(r *repository.Repository, loc *time.Location) {
	today := calendar.DateOf(time.Now().In(loc))

	programs := []*domain.Program{
		{
			Title:          "Weekly Basketball Clinic",
			Description:    "Fundamentals training for barangay youth at the covered court.",
			Status:         domain.ProgramActive,
			TargetAudience: "Ages 12-17",
			Schedule: domain.ProgramSchedule{
				Type:       "RECURRING",
				StartDate:  today.AddDays(-30).String(),
				EndDate:    today.AddDays(60).String(),
				StartTime:  "16:00",
				EndTime:    "18:00",
				Frequency:  "WEEKLY",
				DaysOfWeek: []string{"TUESDAY", "THURSDAY"},
			},
		},
		{
			Title:          "Coastal Cleanup Drive",
			Description:    "Bi-weekly shoreline cleanup with the environmental committee.",
			Status:         domain.ProgramActive,
			TargetAudience: "All residents",
			Schedule: domain.ProgramSchedule{
				Type:       "RECURRING",
				StartDate:  today.AddDays(-14).String(),
				EndDate:    today.AddDays(90).String(),
				StartTime:  "06:00",
				EndTime:    "09:00",
				Frequency:  "BI_WEEKLY",
				DaysOfWeek: []string{"SATURDAY"},
			},
		},
		{
			Title:          "Leadership Seminar",
			Description:    "One-time leadership training for SK volunteers.",
			Status:         domain.ProgramActive,
			TargetAudience: "SK volunteers",
			Schedule: domain.ProgramSchedule{
				Type:      "ONE_TIME",
				StartDate: today.AddDays(10).String(),
				EndDate:   today.AddDays(10).String(),
				StartTime: "09:00",
				EndTime:   "17:00",
			},
		},
	}

	for _, program := range programs {
		schedule, err := calendar.ParseSchedule(program.Schedule)
		if err != nil {
			slog.Error("seed program has an invalid schedule", "title", program.Title, "error", err)
			continue
		}
		program.StartDate = schedule.StartDate.Midnight(loc)
		program.EndDate = schedule.EndDate.Midnight(loc)

		if err := r.CreateProgram(program); err != nil {
			slog.Error("failed to insert seed program", "title", program.Title, "error", err)
			continue
		}
	}

	eventEnd := today.AddDays(2).At(20*60, loc)
	events := []*domain.Event{
		{
			Title:       "Youth Assembly",
			Description: "Quarterly general assembly at the barangay hall.",
			StartTime:   today.At(15*60, loc),
			Venue:       "Barangay Hall",
			Status:      domain.EventPlanned,
		},
		{
			Title:       "Film Screening Night",
			Description: "Outdoor screening at the plaza.",
			StartTime:   today.AddDays(2).At(18*60, loc),
			EndTime:     &eventEnd,
			Venue:       "Barangay Plaza",
			Status:      domain.EventPlanned,
		},
	}

	for _, event := range events {
		if err := r.CreateEvent(event); err != nil {
			slog.Error("failed to insert seed event", "title", event.Title, "error", err)
		}
	}

	scholarshipDue := today.AddDays(2).Midnight(loc)
	grantDue := today.AddDays(6).Midnight(loc)
	forms := []*domain.Form{
		{
			Title:              "Scholarship Application",
			Description:        "Educational assistance for the coming semester.",
			SubmissionDeadline: &scholarshipDue,
			Status:             domain.FormPublished,
		},
		{
			Title:              "Project Grant Proposal",
			Description:        "Funding proposals for youth-led community projects.",
			SubmissionDeadline: &grantDue,
			Status:             domain.FormPublished,
		},
		{
			Title:       "Volunteer Interest Form",
			Description: "Open-ended signup, no deadline.",
			Status:      domain.FormDraft,
		},
	}

	for _, form := range forms {
		if err := r.CreateForm(form); err != nil {
			slog.Error("failed to insert seed form", "title", form.Title, "error", err)
		}
	}

	slog.Info("sample data loaded")
}
