// Package content holds the fixed marketing content served by the API.
// Values are rebuilt on every call so callers can never share or mutate them.
package content

import "github.com/doctorprofile/profile-api/internal/schema"

// PhotoPath is the public path advertised as the doctor's photo.
const PhotoPath = "/doctor.jpg"

// Profile returns the doctor's public profile.
func Profile() schema.DoctorProfile {
	photo := PhotoPath
	return schema.DoctorProfile{
		Name:     "Dr. Amelia Hart",
		Title:    "Board-Certified Cardiologist",
		Location: "San Francisco, CA",
		Bio: "Dr. Hart is a board-certified cardiologist with over 12 years of experience " +
			"in preventative cardiology, heart failure management, and cardiac imaging. " +
			"She believes in compassionate, evidence-based care tailored to each patient.",
		Specialties:     []string{"Preventive Cardiology", "Heart Failure", "Cardiac Imaging"},
		YearsExperience: 12,
		Education: []string{
			"MD, Johns Hopkins University School of Medicine",
			"Residency, Internal Medicine – UCSF Medical Center",
			"Fellowship, Cardiology – Stanford Health Care",
		},
		Certifications: []string{"ABIM – Cardiovascular Disease", "ACLS/BLS"},
		Languages:      []string{"English", "Spanish"},
		PhotoURL:       &photo,
		Socials: map[string]string{
			"twitter":  "https://twitter.com/doctor",
			"linkedin": "https://linkedin.com/in/doctor",
		},
	}
}

// Testimonials returns the three featured patient reviews, in display order.
func Testimonials() []schema.Testimonial {
	return []schema.Testimonial{
		{Name: "Sofia M.", Text: "Dr. Hart took the time to listen and explained everything clearly.", Rating: 5},
		{Name: "James R.", Text: "Truly expert care. I felt supported every step of the way.", Rating: 5},
		{Name: "Priya K.", Text: "Super kind and thorough. Highly recommend!", Rating: 4},
	}
}
