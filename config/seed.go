package config

import (
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"petcare-catalog/models"
)

type seedType struct {
	Name string
	Slug string
}

type seedCategory struct {
	Name  string
	Slug  string
	Types []seedType
}

var catalogSeed = []seedCategory{
	{
		Name: "Vet Clinics",
		Slug: "vet_clinics",
		Types: []seedType{
			{Name: "Mouth and teeth", Slug: "dentistry"},
			{Name: "Skin, coat, ears", Slug: "dermatology"},
			{Name: "Eyes", Slug: "eyes"},
			{Name: "Nervous system", Slug: "nervous_system"},
			{Name: "Bones, joints, musculoskeletal", Slug: "bones_joints_musculoskeletal"},
			{Name: "Heart and vessels", Slug: "heart_vessels"},
			{Name: "Respiratory system", Slug: "respiratory_system"},
			{Name: "Digestion and GI tract", Slug: "digestion_gastrointestinal"},
			{Name: "Urinary and reproductive system", Slug: "urinary_reproductive_system"},
			{Name: "Vaccination and prevention", Slug: "vaccination"},
			{Name: "Microchipping", Slug: "chipping"},
			{Name: "Diagnostics and tests", Slug: "diagnostics"},
			{Name: "Surgery", Slug: "surgery"},
			{Name: "General therapy", Slug: "general_therapy"},
			{Name: "Injections", Slug: "injections"},
			{Name: "Anesthesia", Slug: "anesthesia"},
			{Name: "Inpatient care", Slug: "hospitalization"},
			{Name: "Online consultations", Slug: "consultations"},
			{Name: "Other", Slug: "vet_other"},
		},
	},
	{
		Name: "Grooming",
		Slug: "grooming",
		Types: []seedType{
			{Name: "Bathing and drying", Slug: "shampooing"},
			{Name: "Haircut and trimming", Slug: "dog_cat_grooming"},
			{Name: "Mouth and teeth care", Slug: "oral_care"},
			{Name: "Ear care", Slug: "ear_care"},
			{Name: "Paw and nail care", Slug: "manicure"},
			{Name: "Anal gland cleaning", Slug: "anal_gland_cleaning"},
			{Name: "Brushing and coat care", Slug: "hygienic_care"},
			{Name: "Flea and tick treatment", Slug: "antiparasitic_treatment"},
			{Name: "SPA and massage", Slug: "spa_massage"},
			{Name: "Groomer home visit", Slug: "groomer_home_visit"},
			{Name: "Other", Slug: "grooming_other"},
		},
	},
	{
		Name: "Hotels",
		Slug: "hotels",
		Types: []seedType{
			{Name: "Dog care", Slug: "dog_care"},
			{Name: "Cat care", Slug: "cat_care"},
			{Name: "Other pet care", Slug: "other_pet_care"},
			{Name: "Nutrition", Slug: "nutrition"},
			{Name: "Grooming services", Slug: "care_and_hygiene"},
			{Name: "Veterinary services", Slug: "medical_services"},
			{Name: "Training services", Slug: "activities"},
			{Name: "Photo and video reports", Slug: "photo_video_reporting"},
			{Name: "Delivery / transfer", Slug: "delivery_transfer"},
			{Name: "Other", Slug: "hotel_other"},
		},
	},
	{
		Name: "Walking",
		Slug: "walking",
		Types: []seedType{
			{Name: "Walking", Slug: "walking"},
			{Name: "Other", Slug: "walking_other"},
		},
	},
	{
		Name: "Pet Stores",
		Slug: "pet_store",
		Types: []seedType{
			{Name: "Dog products", Slug: "dog_products"},
			{Name: "Cat products", Slug: "cat_products"},
			{Name: "Bird products", Slug: "bird_products"},
			{Name: "Reptile products", Slug: "reptile_products"},
			{Name: "Rodent products", Slug: "rodent_products"},
			{Name: "Fish products", Slug: "fish_products"},
			{Name: "Offline store", Slug: "offline_store"},
			{Name: "Online store", Slug: "online_store"},
			{Name: "Other", Slug: "pet_store_other"},
		},
	},
	{
		Name: "Dog Trainers/Handlers",
		Slug: "dog_trainer",
		Types: []seedType{
			{Name: "Training", Slug: "training"},
			{Name: "Walking with training elements", Slug: "walk_with_training_elements"},
			{Name: "Behavioral consultation", Slug: "behavioral_consultation"},
			{Name: "Protective / special training", Slug: "protective_special_training"},
			{Name: "Home or offsite lessons", Slug: "home_or_offsite_lessons"},
			{Name: "Handling", Slug: "handling"},
			{Name: "Sport preparation", Slug: "sport_preparation"},
			{Name: "Other", Slug: "trainer_other"},
		},
	},
}

// SeedCatalog upserts the default category/type tree, keyed by slug so
// reruns stay idempotent.
func SeedCatalog(db *gorm.DB) error {
	log.Println("Seeding service catalog...")

	for _, categoryData := range catalogSeed {
		category := models.ServiceCategory{
			Name: categoryData.Name,
			Slug: categoryData.Slug,
		}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"name"}),
		}).Create(&category).Error; err != nil {
			return err
		}

		// OnConflict does not refill the ID on update, so read it back.
		if err := db.First(&category, "slug = ?", categoryData.Slug).Error; err != nil {
			return err
		}

		for _, typeData := range categoryData.Types {
			serviceType := models.ServiceType{
				Name:       typeData.Name,
				Slug:       typeData.Slug,
				CategoryID: category.ID,
				Status:     models.TypeStatusActive,
			}
			if err := db.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "slug"}},
				DoUpdates: clause.AssignmentColumns([]string{"name", "category_id"}),
			}).Create(&serviceType).Error; err != nil {
				return err
			}
		}
	}

	log.Println("Seeding finished")
	return nil
}
