package company

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployerID  uuid.UUID `gorm:"column:employer_id;type:uuid;not null;uniqueIndex:uq_companies_employer"`
	Name        string    `gorm:"column:name;type:varchar(100);not null"`
	Description string    `gorm:"column:description;type:text"`
	Website     string    `gorm:"column:website;type:text"`
	Logo        string    `gorm:"column:logo;type:text"`
	Location    string    `gorm:"column:location;type:varchar(255)"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Company) TableName() string {
	return "companies"
}
