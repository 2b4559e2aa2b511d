package models

// SiteContent, public sitenin tek istekte çektiği toplu içerik.
// Singleton bölümler hiç kaydedilmemişse varsayılanlarıyla dolu gelir;
// frontend boş durumla uğraşmaz.
type SiteContent struct {
	Hero         *HeroSection  `json:"hero"`
	About        *AboutSection `json:"about"`
	ContactInfo  *ContactInfo  `json:"contact_info"`
	Skills       []SkillGroup  `json:"skills"`
	Experiences  []Experience  `json:"experiences"`
	Projects     []Project     `json:"projects"`
	Education    []Education   `json:"education"`
	Achievements []Achievement `json:"achievements"`
}

// SkillGroup, kategori bazında gruplanmış yetenekler.
type SkillGroup struct {
	Category string  `json:"category"`
	Skills   []Skill `json:"skills"`
}

// SiteStats, public /api/stats yanıtı — sayaçlar DB'den anlık hesaplanır.
type SiteStats struct {
	ProjectCount     int `json:"project_count"`
	SkillCount       int `json:"skill_count"`
	ExperienceCount  int `json:"experience_count"`
	AchievementCount int `json:"achievement_count"`
}
