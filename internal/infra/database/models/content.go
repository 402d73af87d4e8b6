package models

import (
	"time"

	"github.com/lib/pq"
)

type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Email     string    `json:"email" gorm:"type:text;uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"type:text;not null"`
	Role      string    `json:"role" gorm:"type:text;not null;default:'customer'"`
	FirstName string    `json:"firstName" gorm:"type:text"`
	LastName  string    `json:"lastName" gorm:"type:text"`
	CDate     time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
	MDate     time.Time `json:"mdate" gorm:"type:timestamp with time zone;not null;default:clock_timestamp()"`
}

type Banner struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title       string    `json:"title" gorm:"type:text"`
	Description string    `json:"description" gorm:"type:text"`
	Image       string    `json:"image" gorm:"type:text;not null"`
	LinkURL     string    `json:"linkUrl" gorm:"type:text"`
	Order       int       `json:"order" gorm:"column:display_order;index"`
	IsActive    bool      `json:"isActive" gorm:"index"`
	CDate       time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

type WeeklyInspiration struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title     string    `json:"title" gorm:"type:text"`
	Quote     string    `json:"quote" gorm:"type:text;not null"`
	Reference string    `json:"reference" gorm:"type:text"`
	Image     string    `json:"image" gorm:"type:text"`
	IsActive  bool      `json:"isActive" gorm:"index"`
	CDate     time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

type MenuItem struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name        string    `json:"name" gorm:"type:text;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Price       float64   `json:"price" gorm:"not null"`
	Category    string    `json:"category" gorm:"type:text;index;not null"`
	Image       string    `json:"image" gorm:"type:text"`
	IsAvailable bool      `json:"isAvailable" gorm:"index"`
	CDate       time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

type GalleryItem struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title       string    `json:"title" gorm:"type:text"`
	Description string    `json:"description" gorm:"type:text"`
	Image       string    `json:"image" gorm:"type:text;not null"`
	Category    string    `json:"category" gorm:"type:text;index;not null"`
	CDate       time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

type Package struct {
	ID          string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name        string         `json:"name" gorm:"type:text;not null"`
	Description string         `json:"description" gorm:"type:text"`
	Price       *float64       `json:"price"`
	Category    string         `json:"category" gorm:"type:text;index;not null"`
	Image       string         `json:"image" gorm:"type:text"`
	Inclusions  pq.StringArray `json:"inclusions" gorm:"type:text[]"`
	IsActive    bool           `json:"isActive" gorm:"index"`
	CDate       time.Time      `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

type Inquiry struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name      string    `json:"name" gorm:"type:text;not null"`
	Email     string    `json:"email" gorm:"type:text;not null"`
	Phone     string    `json:"phone" gorm:"type:text"`
	EventDate string    `json:"eventDate" gorm:"type:text"`
	Message   string    `json:"message" gorm:"type:text"`
	Status    string    `json:"status" gorm:"type:text;index;not null;default:'new'"`
	CDate     time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}
