package models

type JobType string

const (
	JobTypeFullTime   JobType = "FULL_TIME"
	JobTypePartTime   JobType = "PART_TIME"
	JobTypeContract   JobType = "CONTRACT"
	JobTypeInternship JobType = "INTERNSHIP"
	JobTypeTemporary  JobType = "TEMPORARY"
)

type ExperienceLevel string

const (
	ExperienceEntry     ExperienceLevel = "ENTRY"
	ExperienceJunior    ExperienceLevel = "JUNIOR"
	ExperienceMid       ExperienceLevel = "MID"
	ExperienceSenior    ExperienceLevel = "SENIOR"
	ExperienceLead      ExperienceLevel = "LEAD"
	ExperienceExecutive ExperienceLevel = "EXECUTIVE"
)

type RemoteOption string

const (
	RemoteOnsite RemoteOption = "ONSITE"
	RemoteRemote RemoteOption = "REMOTE"
	RemoteHybrid RemoteOption = "HYBRID"
)
