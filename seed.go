package campusguide

const imageBaseURL = "https://raw.githubusercontent.com/aryanjha205/ome/main/static/images/"

// DefaultLocations returns the campus locations used to seed an empty store,
// in catalog order. Each call returns fresh values.
func DefaultLocations() []*Location {
	return []*Location{
		{
			Name:        "Main Entrance",
			Keywords:    []string{"main gate", "entrance", "entry", "gate", "main entrance"},
			Description: "The main entrance to Parul Institute of Technology, featuring modern infrastructure and security facilities. The gateway to excellence in technical education.",
			ImagePath:   imageBaseURL + "main_entrance.jpg",
			Facilities:  []string{"Security Office", "Visitor Reception", "Parking Area", "Information Desk"},
			Timing:      "24/7 Access",
			Coordinates: "22.2587° N, 73.2119° E",
		},
		{
			Name:        "Technical Library",
			Keywords:    []string{"library", "books", "study", "reading", "technical library", "e-library"},
			Description: "Comprehensive technical library with extensive collection of engineering books, journals, and digital resources. Perfect environment for research and study.",
			ImagePath:   imageBaseURL + "library.jpg",
			Facilities:  []string{"Technical Books Collection", "Digital Library", "Research Section", "Study Rooms", "Internet Access"},
			Timing:      "Mon-Sun: 8:00 AM - 10:00 PM",
			Coordinates: "22.2590° N, 73.2125° E",
		},
		{
			Name:        "Computer Engineering Lab",
			Keywords:    []string{"computer lab", "lab", "programming", "computers", "ce lab", "software lab"},
			Description: "State-of-the-art computer engineering laboratory equipped with latest hardware and software for programming, development, and research activities.",
			ImagePath:   imageBaseURL + "computer_lab.jpg",
			Facilities:  []string{"50 High-end Workstations", "Latest Software Tools", "Project Development Area", "Network Lab"},
			Timing:      "Mon-Fri: 9:00 AM - 6:00 PM, Sat: 9:00 AM - 2:00 PM",
			Coordinates: "22.2592° N, 73.2130° E",
		},
		{
			Name:        "Electronics & Communication Lab",
			Keywords:    []string{"ec lab", "electronics lab", "communication lab", "circuits lab", "embedded lab"},
			Description: "Advanced electronics and communication laboratory with modern equipment for circuit design, embedded systems, and communication experiments.",
			ImagePath:   imageBaseURL + "ec_lab.jpg",
			Facilities:  []string{"Circuit Design Workstations", "Oscilloscopes", "Signal Generators", "Embedded Systems Kits", "PCB Design Tools"},
			Timing:      "Mon-Fri: 9:00 AM - 6:00 PM, Sat: 9:00 AM - 2:00 PM",
			Coordinates: "22.2594° N, 73.2128° E",
		},
		{
			Name:        "Mechanical Workshop",
			Keywords:    []string{"mechanical lab", "workshop", "machine shop", "manufacturing lab", "mech lab"},
			Description: "Well-equipped mechanical workshop with various machines and tools for manufacturing, machining, and hands-on learning experiences.",
			ImagePath:   imageBaseURL + "mech_workshop.jpg",
			Facilities:  []string{"CNC Machines", "Lathe Machines", "Milling Machines", "Welding Setup", "CAD/CAM Lab"},
			Timing:      "Mon-Fri: 9:00 AM - 5:00 PM, Sat: 9:00 AM - 1:00 PM",
			Coordinates: "22.2596° N, 73.2132° E",
		},
		{
			Name:        "Student Hostels",
			Keywords:    []string{"hostel", "accommodation", "rooms", "dormitory", "residence", "boys hostel", "girls hostel"},
			Description: "Comfortable accommodation facilities for students with modern amenities. Separate hostels for boys and girls with 24/7 security and mess facilities.",
			ImagePath:   imageBaseURL + "hostels.jpg",
			Facilities:  []string{"AC/Non-AC Rooms", "Wi-Fi", "Mess Hall", "24/7 Security", "Laundry", "Study Room", "Recreation Area"},
			Timing:      "24/7 Access for Residents",
			Coordinates: "22.2585° N, 73.2140° E",
		},
		{
			Name:        "Institute Cafeteria",
			Keywords:    []string{"cafeteria", "food", "dining", "canteen", "mess", "restaurant", "food court"},
			Description: "Spacious cafeteria serving variety of cuisines at affordable prices. Clean, hygienic food preparation with comfortable seating arrangements.",
			ImagePath:   imageBaseURL + "cafeteria.jpg",
			Facilities:  []string{"Multi-cuisine Food", "AC Dining Area", "Snacks Counter", "Beverages", "Outdoor Seating"},
			Timing:      "Mon-Sun: 7:00 AM - 10:00 PM",
			Coordinates: "22.2588° N, 73.2122° E",
		},
		{
			Name:        "Sports & Recreation Center",
			Keywords:    []string{"sports", "gym", "playground", "basketball", "cricket", "badminton", "fitness center", "sports center", "recreation center"},
			Description: "Modern sports complex with indoor and outdoor facilities for various sports and fitness activities. Promotes physical wellness among students.",
			ImagePath:   imageBaseURL + "sports_center.jpg",
			Facilities:  []string{"Basketball Court", "Badminton Court", "Table Tennis", "Gymnasium", "Cricket Ground", "Fitness Equipment"},
			Timing:      "Mon-Sun: 6:00 AM - 9:00 PM",
			Coordinates: "22.2595° N, 73.2135° E",
		},
		{
			Name:        "Auditorium",
			Keywords:    []string{"auditorium", "seminar hall", "conference hall", "events", "presentations"},
			Description: "Modern auditorium with advanced audio-visual facilities for seminars, conferences, cultural events, and guest lectures.",
			ImagePath:   imageBaseURL + "auditorium.jpg",
			Facilities:  []string{"Seating for 500", "Advanced AV System", "Air Conditioning", "Stage with Projectors", "Sound System"},
			Timing:      "Event-based Access, Mon-Fri: 9:00 AM - 6:00 PM",
			Coordinates: "22.2591° N, 73.2127° E",
		},
		{
			Name:        "Administrative Block",
			Keywords:    []string{"admin", "office", "admission", "accounts", "principal office", "administration", "admin block"},
			Description: "Central administrative building housing all administrative offices including admissions, accounts, principal office, and student services.",
			ImagePath:   "https://github.com/aryanjha205/ome/blob/153ed40f40567b922370d41151d38d687ce459de/static/images/admin_block.jpg",
			Facilities:  []string{"Admission Office", "Accounts Department", "Principal Office", "Student Services", "Examination Cell"},
			Timing:      "Mon-Fri: 9:00 AM - 5:00 PM, Sat: 9:00 AM - 1:00 PM",
			Coordinates: "22.2589° N, 73.2124° E",
		},
	}
}
