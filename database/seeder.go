package database

import (
	"log"

	"lms/models"

	"gorm.io/datatypes"
)

// SeedCourses loads the demo catalog on an empty database
func SeedCourses() {
	db := Database.Db

	var count int64
	if err := db.Model(&models.Course{}).Count(&count).Error; err != nil {
		log.Printf("Seeder: failed to count courses: %v", err)
		return
	}
	if count > 0 {
		return
	}

	log.Println("Seeding demo courses...")

	courses := []models.Course{
		{
			Title:           "Mastering Software Design Patterns",
			Author:          "Waterball Pan",
			Description:     "Become a hardcore hands-on coder in one journey.",
			LongDescription: "A deep journey through software design patterns, from object-oriented foundations to architecture-level decisions.",
			Image:           "/images/course_0.png",
			Price:           3990,
			OriginalPrice:   6990,
			Tags:            "design-patterns,architecture",
			Highlight:       true,
			PromoText:       "Watch the intro and get an instant discount",
			Recommended:     true,
			HasTrial:        true,
			SyllabusJSON: datatypes.JSON([]byte(`[
				{
					"id": "c1",
					"title": "Departure: Object-Oriented Foundations",
					"units": [
						{"id": "c1-u1", "title": "Unit 1: Object-Oriented Thinking (Trial)", "videoId": "c101", "exp": 100},
						{"id": "c1-u2", "title": "Unit 2: Encapsulation, Inheritance, Polymorphism", "videoId": "c102", "exp": 100},
						{"id": "c1-u3", "title": "Unit 3: Interfaces and Abstract Classes", "videoId": "c103", "exp": 150}
					]
				}
			]`)),
		},
		{
			Title:           "AI x BDD: Spec-Driven Automated Development",
			Author:          "Waterball Pan",
			Description:     "The must-take course for top 1% AI engineers.",
			LongDescription: "Learn spec-driven development end to end and let automation carry your delivery pipeline.",
			Image:           "/images/course_4.png",
			Price:           7599,
			OriginalPrice:   15999,
			Tags:            "AI,BDD,Cucumber",
			Recommended:     true,
			HasTrial:        false,
			SyllabusJSON: datatypes.JSON([]byte(`[
				{
					"id": "ch1",
					"title": "Prerequisites of Spec-Driven Development",
					"date": "2025/09/29",
					"units": [
						{"id": "ch1-u1", "title": "Unit 1: Why Spec-Driven?", "videoId": "ch101", "exp": 100},
						{"id": "ch1-u2", "title": "Unit 2: Environment and Tooling", "videoId": "ch102", "exp": 100},
						{"id": "ch1-u3", "title": "Unit 3: The First BDD Case", "videoId": "ch103", "exp": 200}
					]
				}
			]`)),
		},
	}

	for i := range courses {
		if err := db.Create(&courses[i]).Error; err != nil {
			log.Printf("Seeder: failed to create course %q: %v", courses[i].Title, err)
		}
	}

	log.Printf("Seeded %d demo courses.", len(courses))
}
