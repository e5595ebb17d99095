package model

import "time"

// ProjectInfo 项目表
type ProjectInfo struct {
	ID            int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Slug          string     `gorm:"column:slug;size:160;uniqueIndex;not null" json:"slug"`
	Title         string     `gorm:"column:title;size:200;not null" json:"title"`
	Tagline       string     `gorm:"column:tagline;size:300" json:"tagline"`
	Status        string     `gorm:"column:status;size:20;default:'ongoing'" json:"status"` // ongoing/upcoming/completed
	Ptype         string     `gorm:"column:ptype;size:20;default:'residential'" json:"ptype"`
	Location      string     `gorm:"column:location;size:300" json:"location"`
	LandAreaSft   int        `gorm:"column:land_area_sft" json:"landAreaSft"`
	Floors        int        `gorm:"column:floors" json:"floors"`
	UnitsTotal    int        `gorm:"column:units_total" json:"unitsTotal"`
	ParkingSpaces int        `gorm:"column:parking_spaces" json:"parkingSpaces"`
	FrontageFt    int        `gorm:"column:frontage_ft" json:"frontageFt"`
	Orientation   string     `gorm:"column:orientation;size:100" json:"orientation"`
	SizeRange     string     `gorm:"column:size_range;size:100" json:"sizeRange"`
	SpecsJSON     string     `gorm:"column:specs_json;type:text;default:'{}'" json:"specsJson"`
	BrochureURL   string     `gorm:"column:brochure_url;size:500" json:"brochureUrl"`
	HeroImageURL  string     `gorm:"column:hero_image_url;size:500" json:"heroImageUrl"`
	VideoURL      string     `gorm:"column:video_url;size:500" json:"videoUrl"`
	ShortDesc     string     `gorm:"column:short_desc;size:500" json:"shortDesc"`
	Highlights    string     `gorm:"column:highlights;size:500" json:"highlights"`
	Partners      string     `gorm:"column:partners;size:500" json:"partners"`
	HandoverDate  *time.Time `gorm:"column:handover_date;type:date" json:"handoverDate"`
	ProgressPct   int        `gorm:"column:progress_pct;default:0" json:"progressPct"`
	BrID          string     `gorm:"column:br_id;size:7" json:"brId"`
	EmpID         string     `gorm:"column:emp_id;size:6" json:"empId"`
	Published     string     `gorm:"column:published;size:3;default:'Yes'" json:"published"`
	Audit
}

// TableName 表名
func (ProjectInfo) TableName() string {
	return "projects"
}

// BannerInfo 首页轮播图表
type BannerInfo struct {
	ID        int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ImageURL  string `gorm:"column:image_url;size:500;not null" json:"imageUrl"`
	Headline  string `gorm:"column:headline;size:200" json:"headline"`
	Subhead   string `gorm:"column:subhead;size:300" json:"subhead"`
	CtaText   string `gorm:"column:cta_text;size:64" json:"ctaText"`
	CtaURL    string `gorm:"column:cta_url;size:300" json:"ctaUrl"`
	SortOrder int    `gorm:"column:sort_order;not null" json:"sortOrder"`
	IsActive  bool   `gorm:"column:is_active;not null" json:"isActive"`
	Published string `gorm:"column:published;size:3;default:'Yes';not null" json:"published"`
	Audit
}

// TableName 表名
func (BannerInfo) TableName() string {
	return "banners"
}

// AwardInfo 奖项表
type AwardInfo struct {
	ID              int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title           string `gorm:"column:title;size:200;not null" json:"title"`
	Issuer          string `gorm:"column:issuer;size:200" json:"issuer"`
	Year            int    `gorm:"column:year" json:"year"`
	Description     string `gorm:"column:description;size:400" json:"description"`
	ImageURL        string `gorm:"column:image_url;size:500" json:"imageUrl"`
	Published       string `gorm:"column:published;size:3;default:'No';not null" json:"published"`
	DisplayingOrder int    `gorm:"column:displaying_order;default:0;not null" json:"displayingOrder"`
	Audit
}

// TableName 表名
func (AwardInfo) TableName() string {
	return "awards"
}

// TestimonialInfo 客户评价表
type TestimonialInfo struct {
	ID           int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name         string `gorm:"column:name;size:120;not null" json:"name"`
	Role         string `gorm:"column:role;size:120" json:"role"`
	ProjectID    int64  `gorm:"column:project_id;not null" json:"projectId"`
	ProjectTitle string `gorm:"column:project_title;size:160" json:"projectTitle"`
	Quote        string `gorm:"column:quote;type:text;not null" json:"quote"`
	VideoURL     string `gorm:"column:video_url;size:500" json:"videoUrl"`
	SortOrder    int    `gorm:"column:sort_order;default:0" json:"sortOrder"`
	Published    string `gorm:"column:published;size:3;default:'Yes'" json:"published"`
	Audit
}

// TableName 表名
func (TestimonialInfo) TableName() string {
	return "testimonials"
}

// Feedback 访客留言表，只进不改
type Feedback struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;size:120;not null" json:"name"`
	Phone     string    `gorm:"column:phone;size:40;not null" json:"phone"`
	Email     string    `gorm:"column:email;size:160" json:"email"`
	Message   string    `gorm:"column:message;type:text" json:"message"`
	IsRead    bool      `gorm:"column:is_read;default:false;not null" json:"isRead"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index" json:"createdAt"`
}

// TableName 表名
func (Feedback) TableName() string {
	return "feedback"
}
