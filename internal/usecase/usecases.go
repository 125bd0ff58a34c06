package usecase

// UseCases groups every operation the console exposes.
type UseCases struct {
	ScheduleTrial         *ScheduleTrialUseCase
	RescheduleBooking     *RescheduleBookingUseCase
	ChangeBookingStatus   *ChangeBookingStatusUseCase
	ConvertFollowUp       *ConvertFollowUpUseCase
	MarkFollowUpLost      *MarkFollowUpLostUseCase
	LogFollowUpCall       *LogFollowUpCallUseCase
	LogInternshipHours    *LogInternshipHoursUseCase
	AssignMentor          *AssignMentorUseCase
	ToggleEnrolmentStatus *ToggleEnrolmentStatusUseCase
	CreateEnrolment       *CreateEnrolmentUseCase
	UpdateEnrolment       *UpdateEnrolmentUseCase
	CreateLead            *CreateLeadUseCase
	UpdateLead            *UpdateLeadUseCase
	MarkLeadConverted     *MarkLeadConvertedUseCase
	EditClassSession      *EditClassSessionUseCase
	AssignStudents        *AssignStudentsUseCase
	Dashboard             *DashboardUseCase
}

func New(d Deps) *UseCases {
	return &UseCases{
		ScheduleTrial:         NewScheduleTrialUseCase(d),
		RescheduleBooking:     NewRescheduleBookingUseCase(d),
		ChangeBookingStatus:   NewChangeBookingStatusUseCase(d),
		ConvertFollowUp:       NewConvertFollowUpUseCase(d),
		MarkFollowUpLost:      NewMarkFollowUpLostUseCase(d),
		LogFollowUpCall:       NewLogFollowUpCallUseCase(d),
		LogInternshipHours:    NewLogInternshipHoursUseCase(d),
		AssignMentor:          NewAssignMentorUseCase(d),
		ToggleEnrolmentStatus: NewToggleEnrolmentStatusUseCase(d),
		CreateEnrolment:       NewCreateEnrolmentUseCase(d),
		UpdateEnrolment:       NewUpdateEnrolmentUseCase(d),
		CreateLead:            NewCreateLeadUseCase(d),
		UpdateLead:            NewUpdateLeadUseCase(d),
		MarkLeadConverted:     NewMarkLeadConvertedUseCase(d),
		EditClassSession:      NewEditClassSessionUseCase(d),
		AssignStudents:        NewAssignStudentsUseCase(d),
		Dashboard:             NewDashboardUseCase(d),
	}
}
