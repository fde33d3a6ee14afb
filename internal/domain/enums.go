package domain

// ClientType classifies the relationship with a client.
type ClientType string

const (
	ClientTypeProspect  ClientType = "Prospect"
	ClientTypeUser      ClientType = "User"
	ClientTypeAssociate ClientType = "Associate"
)

func (c ClientType) String() string { return string(c) }

func (c ClientType) IsValid() bool {
	switch c {
	case ClientTypeProspect, ClientTypeUser, ClientTypeAssociate:
		return true
	}
	return false
}

// Frequency is the recurrence cadence label of a follow-up.
// It is informational: no engine derives dates from it.
type Frequency string

const (
	FrequencyDaily       Frequency = "Daily"
	FrequencyWeekly      Frequency = "Weekly"
	FrequencyEveryTwoWks Frequency = "Every 2 Weeks"
	FrequencyMonthly     Frequency = "Monthly"
)

func (f Frequency) String() string { return string(f) }

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyEveryTwoWks, FrequencyMonthly:
		return true
	}
	return false
}

// Status is the lifecycle state shared by follow-ups and tasks.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
	StatusArchived   Status = "Archived"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusArchived:
		return true
	}
	return false
}

// IsOpen reports whether the status still takes part in due queries.
func (s Status) IsOpen() bool {
	return s != StatusCompleted && s != StatusArchived
}

// Priority ranks tasks and follow-ups.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

func (p Priority) String() string { return string(p) }

func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Outcome is the result of a logged call.
type Outcome string

const (
	OutcomeConnected   Outcome = "CONNECTED"
	OutcomeVoicemail   Outcome = "VOICEMAIL"
	OutcomeSaleClosed  Outcome = "SALE"
	OutcomeWrongNumber Outcome = "WRONG"
)

func (o Outcome) String() string { return string(o) }

func (o Outcome) IsValid() bool {
	switch o {
	case OutcomeConnected, OutcomeVoicemail, OutcomeSaleClosed, OutcomeWrongNumber:
		return true
	}
	return false
}

// UserStatus gates whether a user receives the daily digest.
type UserStatus string

const (
	UserStatusActive   UserStatus = "Active"
	UserStatusInactive UserStatus = "Inactive"
)

func (s UserStatus) String() string { return string(s) }

func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusActive, UserStatusInactive:
		return true
	}
	return false
}

// OrgLevel is the tier of a node in the organization chart.
type OrgLevel string

const (
	OrgLevelPresidentTeam OrgLevel = "PRESIDENT_TEAM"
	OrgLevelRoot          OrgLevel = "ROOT"
	OrgLevelSupervisor    OrgLevel = "SUPERVISOR"
	OrgLevelWorldTeam     OrgLevel = "WORLD_TEAM"
	OrgLevelMember        OrgLevel = "MEMBER"
)

func (l OrgLevel) String() string { return string(l) }

func (l OrgLevel) IsValid() bool {
	switch l {
	case OrgLevelPresidentTeam, OrgLevelRoot, OrgLevelSupervisor, OrgLevelWorldTeam, OrgLevelMember:
		return true
	}
	return false
}
