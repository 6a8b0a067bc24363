package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Profile map keys.
const (
	KeyJob             = "job"
	KeyCompany         = "company"
	KeySSN             = "ssn"
	KeyResidence       = "residence"
	KeyCurrentLocation = "current_location"
	KeyBloodGroup      = "blood_group"
	KeyWebsite         = "website"
	KeyUsername        = "username"
	KeyName            = "name"
	KeySex             = "sex"
	KeyAddress         = "address"
	KeyMail            = "mail"
	KeyBirthdate       = "birthdate"
)

// Profile is a fake personal profile.
type Profile struct {
	Job             string
	Company         string
	SSN             string
	Residence       string
	CurrentLocation [2]decimal.Decimal // latitude, longitude
	BloodGroup      string
	Website         []string
	Username        string
	Name            string
	Sex             string
	Address         string
	Mail            string
	Birthdate       time.Time
}

// AsMap returns the mapping representation of the profile.
func (p Profile) AsMap() map[string]any {
	return map[string]any{
		KeyJob:             p.Job,
		KeyCompany:         p.Company,
		KeySSN:             p.SSN,
		KeyResidence:       p.Residence,
		KeyCurrentLocation: p.CurrentLocation,
		KeyBloodGroup:      p.BloodGroup,
		KeyWebsite:         append([]string(nil), p.Website...),
		KeyUsername:        p.Username,
		KeyName:            p.Name,
		KeySex:             p.Sex,
		KeyAddress:         p.Address,
		KeyMail:            p.Mail,
		KeyBirthdate:       p.Birthdate,
	}
}

// ProfileFromMap builds a Profile from its mapping representation.
// Missing or mistyped keys are left at their zero value.
func ProfileFromMap(m map[string]any) Profile {
	var p Profile
	p.Job, _ = m[KeyJob].(string)
	p.Company, _ = m[KeyCompany].(string)
	p.SSN, _ = m[KeySSN].(string)
	p.Residence, _ = m[KeyResidence].(string)
	p.CurrentLocation, _ = m[KeyCurrentLocation].([2]decimal.Decimal)
	p.BloodGroup, _ = m[KeyBloodGroup].(string)
	if w, ok := m[KeyWebsite].([]string); ok {
		p.Website = append([]string(nil), w...)
	}
	p.Username, _ = m[KeyUsername].(string)
	p.Name, _ = m[KeyName].(string)
	p.Sex, _ = m[KeySex].(string)
	p.Address, _ = m[KeyAddress].(string)
	p.Mail, _ = m[KeyMail].(string)
	p.Birthdate, _ = m[KeyBirthdate].(time.Time)
	return p
}
