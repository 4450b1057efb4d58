package memory

import (
	"time"

	"github.com/thrive/wellness-api/internal/core/domain"
)

func seedTherapists() []domain.User {
	return []domain.User{
		{
			ID:              "therapist-1",
			Name:            "Dr. Sarah Johnson",
			Email:           "sarah.johnson@thrive.com",
			Role:            domain.RoleTherapist,
			ProfileImage:    "https://randomuser.me/api/portraits/women/44.jpg",
			Bio:             "Licensed psychologist with 10+ years of experience in cognitive behavioral therapy.",
			Specializations: []string{"Anxiety", "Depression", "Trauma"},
			Rating:          rating(4.9),
		},
		{
			ID:              "therapist-2",
			Name:            "Dr. Michael Chen",
			Email:           "michael.chen@thrive.com",
			Role:            domain.RoleTherapist,
			ProfileImage:    "https://randomuser.me/api/portraits/men/32.jpg",
			Bio:             "Specialized in mindfulness-based therapy approaches for stress and anxiety management.",
			Specializations: []string{"Stress", "Anxiety", "Mindfulness"},
			Rating:          rating(4.7),
		},
		{
			ID:              "therapist-3",
			Name:            "Dr. Aisha Patel",
			Email:           "aisha.patel@thrive.com",
			Role:            domain.RoleTherapist,
			ProfileImage:    "https://randomuser.me/api/portraits/women/66.jpg",
			Bio:             "Family therapist with expertise in relationship counseling and cultural sensitivity.",
			Specializations: []string{"Family Therapy", "Relationships", "Cultural Issues"},
			Rating:          rating(4.8),
		},
		{
			ID:              "therapist-4",
			Name:            "Dr. James Wilson",
			Email:           "james.wilson@thrive.com",
			Role:            domain.RoleTherapist,
			ProfileImage:    "https://randomuser.me/api/portraits/men/11.jpg",
			Bio:             "Specializing in addiction recovery and behavioral change strategies.",
			Specializations: []string{"Addiction", "Substance Abuse", "Recovery"},
			Rating:          rating(4.6),
		},
	}
}

func seedBlogs() []domain.BlogPost {
	day := func(m time.Month, d int) time.Time { return time.Date(2023, m, d, 0, 0, 0, 0, time.UTC) }
	return []domain.BlogPost{
		{
			ID:            "blog-1",
			Title:         "Understanding Anxiety in the Modern World",
			Summary:       "Learn about the causes and effects of anxiety disorders and how to manage symptoms.",
			Content:       "Anxiety is one of the most common mental health conditions affecting millions worldwide...",
			Author:        "Dr. Sarah Johnson",
			CoverImage:    "https://images.unsplash.com/photo-1447452001602-7090c7ab2db3",
			PublishedDate: day(time.May, 15),
			ReadTime:      5,
			Tags:          []string{"Anxiety", "Mental Health", "Self-care"},
		},
		{
			ID:            "blog-2",
			Title:         "The Science of Mindfulness Meditation",
			Summary:       "Discover how mindfulness practices can rewire your brain for better mental health.",
			Content:       "Recent neuroscience research has shown that regular mindfulness meditation can change brain structure...",
			Author:        "Dr. Michael Chen",
			CoverImage:    "https://images.unsplash.com/photo-1506126613408-eca07ce68773",
			PublishedDate: day(time.June, 22),
			ReadTime:      7,
			Tags:          []string{"Mindfulness", "Meditation", "Neuroscience"},
		},
		{
			ID:            "blog-3",
			Title:         "Building Resilience Through Difficult Times",
			Summary:       "Strategies for developing mental strength when facing life's challenges.",
			Content:       "Resilience isn't about avoiding stress or hardship, but developing healthy ways to cope...",
			Author:        "Dr. Aisha Patel",
			CoverImage:    "https://images.unsplash.com/photo-1470770841072-f978cf4d019e",
			PublishedDate: day(time.July, 10),
			ReadTime:      6,
			Tags:          []string{"Resilience", "Coping", "Personal Growth"},
		},
	}
}

func seedFitness() []domain.FitnessContent {
	return []domain.FitnessContent{
		{
			ID:          "fitness-1",
			Title:       "Stress-Relief Yoga",
			Description: "A gentle yoga sequence designed to release tension and calm the mind.",
			Category:    "Yoga",
			Duration:    20,
			Intensity:   domain.IntensityLow,
			Thumbnail:   "https://images.unsplash.com/photo-1552196563-55cd4e45efb3",
			VideoURL:    "https://example.com/videos/stress-yoga",
			Steps: []string{
				"Start in a comfortable seated position",
				"Focus on deep breathing for 1 minute",
				"Move into gentle neck stretches",
			},
		},
		{
			ID:          "fitness-2",
			Title:       "Mood-Boosting HIIT Workout",
			Description: "A short, high-intensity interval training session to release endorphins.",
			Category:    "Cardio",
			Duration:    15,
			Intensity:   domain.IntensityHigh,
			Thumbnail:   "https://images.unsplash.com/photo-1517836357463-d25dfeac3438",
			VideoURL:    "https://example.com/videos/mood-hiit",
		},
		{
			ID:          "fitness-3",
			Title:       "Mindful Movement Meditation",
			Description: "Combine gentle movement with mindfulness for stress reduction.",
			Category:    "Meditation",
			Duration:    10,
			Intensity:   domain.IntensityLow,
			Thumbnail:   "https://images.unsplash.com/photo-1474418397713-003ec9f713a6",
			VideoURL:    "https://example.com/videos/mindful-movement",
		},
	}
}

func seedPatients() []domain.User {
	return []domain.User{
		{ID: "patient-1", Name: "Emily Chen", Email: "emily@example.com", Role: domain.RolePatient,
			ProfileImage: "https://randomuser.me/api/portraits/women/33.jpg"},
		{ID: "patient-2", Name: "Michael Brown", Email: "michael@example.com", Role: domain.RolePatient,
			ProfileImage: "https://randomuser.me/api/portraits/men/54.jpg"},
		{ID: "patient-3", Name: "Jessica Taylor", Email: "jessica@example.com", Role: domain.RolePatient,
			ProfileImage: "https://randomuser.me/api/portraits/women/17.jpg"},
	}
}

func seedMemeTemplates() []domain.MemeTemplate {
	return []domain.MemeTemplate{
		{ID: "template-1", Name: "Distracted Boyfriend", Image: "https://i.imgflip.com/1ur9b0.jpg"},
		{ID: "template-2", Name: "Two Buttons", Image: "https://i.imgflip.com/1g8my4.jpg"},
		{ID: "template-3", Name: "Drake Hotline Bling", Image: "https://i.imgflip.com/30b1gx.jpg"},
		{ID: "template-4", Name: "Change My Mind", Image: "https://i.imgflip.com/24y43o.jpg"},
	}
}

func seedQuotes() []string {
	return []string{
		"Believe in yourself and all that you are.",
		"Every day may not be good, but there's good in every day.",
		"The only way to do great work is to love what you do.",
		"Your mental health is a priority. Your happiness is essential.",
		"You are enough just as you are.",
		"It's okay not to be okay, as long as you don't give up.",
		"Self-care is how you take your power back.",
	}
}
