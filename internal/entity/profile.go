package entity

import "time"

type Profile struct {
	ID           int64     `db:"id"`
	Name         string    `db:"name"`
	Title        string    `db:"title"`
	Bio          string    `db:"bio"`
	ProfileImage string    `db:"profile_image"`
	Resume       string    `db:"resume"`
	Email        string    `db:"email"`
	Phone        string    `db:"phone"`
	Location     string    `db:"location"`
	Github       string    `db:"github"`
	Linkedin     string    `db:"linkedin"`
	Twitter      string    `db:"twitter"`
	Instagram    string    `db:"instagram"`
	CreatedAt    time.Time `db:"created_at"`
}

// ResumeFilename is the download name offered for the resume.
func (p Profile) ResumeFilename() string {
	return p.Name + "_Resume.pdf"
}

type SkillCategory struct {
	ID           int64  `db:"id"`
	Name         string `db:"name"`
	Icon         string `db:"icon"`
	DisplayOrder int    `db:"display_order"`
	Skills       []Skill
}

type Skill struct {
	ID           int64  `db:"id"`
	CategoryID   int64  `db:"category_id"`
	Name         string `db:"name"`
	Proficiency  int    `db:"proficiency"`
	Icon         string `db:"icon"`
	DisplayOrder int    `db:"display_order"`
}

type Service struct {
	ID            int64    `db:"id"`
	Title         string   `db:"title"`
	Description   string   `db:"description"`
	Icon          string   `db:"icon"`
	PriceStarting *float64 `db:"price_starting"`
	IsFeatured    bool     `db:"is_featured"`
	DisplayOrder  int      `db:"display_order"`
}

type Experience struct {
	ID          int64      `db:"id"`
	Company     string     `db:"company"`
	Position    string     `db:"position"`
	Description string     `db:"description"`
	StartDate   time.Time  `db:"start_date"`
	EndDate     *time.Time `db:"end_date"`
	IsCurrent   bool       `db:"is_current"`
	CompanyLogo string     `db:"company_logo"`
}

type Testimonial struct {
	ID                int64     `db:"id"`
	ClientName        string    `db:"client_name"`
	ClientDesignation string    `db:"client_designation"`
	ClientCompany     string    `db:"client_company"`
	ClientPhoto       string    `db:"client_photo"`
	Review            string    `db:"review"`
	Rating            int       `db:"rating"`
	IsFeatured        bool      `db:"is_featured"`
	CreatedAt         time.Time `db:"created_at"`
}
