package models

type UserRole string
type JobStatus string
type JobType string
type LocationType string
type ExperienceLevel string
type ApplicationStatus string

const (
	UserRoleSeeker  UserRole = "seeker"
	UserRoleCompany UserRole = "company"
	UserRoleAdmin   UserRole = "admin"

	JobStatusDraft  JobStatus = "draft"
	JobStatusOpen   JobStatus = "open"
	JobStatusClosed JobStatus = "closed"

	JobTypeFullTime   JobType = "full_time"
	JobTypePartTime   JobType = "part_time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"

	LocationTypeOnSite LocationType = "on_site"
	LocationTypeRemote LocationType = "remote"
	LocationTypeHybrid LocationType = "hybrid"

	ExperienceLevelJunior ExperienceLevel = "junior"
	ExperienceLevelMiddle ExperienceLevel = "middle"
	ExperienceLevelSenior ExperienceLevel = "senior"
	ExperienceLevelLead   ExperienceLevel = "lead"

	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)
