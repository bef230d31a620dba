package models

// GroupMeta is the manifest data attached to a group record.
type GroupMeta struct {
	InstituteID   string `json:"instituteId" yaml:"instituteId"`
	InstituteName string `json:"instituteName" yaml:"instituteName"`
	Course        string `json:"course" yaml:"course"`
}

// Group is a stored group record.
type Group struct {
	Name string `json:"group"`
	GroupMeta
}
