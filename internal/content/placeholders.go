package content

// Fixed fallback records shown on public pages when a collection is empty, so
// the site is never visually bare before the admins publish real content.

var PlaceholderEvents = []*Event{
	{Title: "Annual Sports Day", Description: "Join us for an exciting day of athletic competitions and team spirit.", Date: "2025-01-15", ImageURL: "https://via.placeholder.com/400x300?text=Sports+Day"},
	{Title: "Science Exhibition", Description: "Students showcase their innovative science projects and experiments.", Date: "2025-02-20", ImageURL: "https://via.placeholder.com/400x300?text=Science+Fair"},
	{Title: "Annual Day Celebration", Description: "A grand celebration featuring cultural performances and awards ceremony.", Date: "2025-03-10", ImageURL: "https://via.placeholder.com/400x300?text=Annual+Day"},
	{Title: "Parent-Teacher Meeting", Description: "An opportunity for parents to discuss their child's progress with teachers.", Date: "2025-01-25", ImageURL: "https://via.placeholder.com/400x300?text=PTM"},
}

var PlaceholderGallery = []*GalleryImage{
	{Title: "Annual Sports Day", Category: "Sports", ImageURL: "https://via.placeholder.com/400x300?text=Sports+Day"},
	{Title: "Science Exhibition", Category: "Academic", ImageURL: "https://via.placeholder.com/400x300?text=Science+Fair"},
	{Title: "Cultural Program", Category: "Cultural", ImageURL: "https://via.placeholder.com/400x300?text=Cultural+Program"},
	{Title: "Smart Classroom", Category: "Infrastructure", ImageURL: "https://via.placeholder.com/400x300?text=Classroom"},
	{Title: "School Library", Category: "Infrastructure", ImageURL: "https://via.placeholder.com/400x300?text=Library"},
	{Title: "Art Exhibition", Category: "Cultural", ImageURL: "https://via.placeholder.com/400x300?text=Art+Exhibition"},
	{Title: "Independence Day", Category: "Celebration", ImageURL: "https://via.placeholder.com/400x300?text=Independence+Day"},
	{Title: "Annual Function", Category: "Celebration", ImageURL: "https://via.placeholder.com/400x300?text=Annual+Function"},
	{Title: "Educational Trip", Category: "Activities", ImageURL: "https://via.placeholder.com/400x300?text=Field+Trip"},
}

var PlaceholderFaculty = []*FacultyMember{
	{Name: "Dr. Rajesh Kumar", Designation: "Principal", Department: "Administration", Qualification: "Ph.D. in Education", Experience: "25 years", ImageURL: "https://via.placeholder.com/200x200?text=Principal"},
	{Name: "Mrs. Priya Sharma", Designation: "Vice Principal", Department: "Science", Qualification: "M.Sc., B.Ed.", Experience: "20 years", ImageURL: "https://via.placeholder.com/200x200?text=VP"},
	{Name: "Mr. Amit Singh", Designation: "HOD Science", Department: "Science", Qualification: "M.Sc. Physics, B.Ed.", Experience: "15 years", ImageURL: "https://via.placeholder.com/200x200?text=HOD"},
	{Name: "Mrs. Sunita Verma", Designation: "Senior Teacher", Department: "Mathematics", Qualification: "M.Sc. Mathematics", Experience: "12 years", ImageURL: "https://via.placeholder.com/200x200?text=Teacher"},
	{Name: "Mr. Rahul Gupta", Designation: "Teacher", Department: "English", Qualification: "M.A. English, B.Ed.", Experience: "8 years", ImageURL: "https://via.placeholder.com/200x200?text=Teacher"},
	{Name: "Mrs. Kavita Joshi", Designation: "Teacher", Department: "Hindi", Qualification: "M.A. Hindi, B.Ed.", Experience: "10 years", ImageURL: "https://via.placeholder.com/200x200?text=Teacher"},
	{Name: "Mr. Vikram Patel", Designation: "Teacher", Department: "Computer Science", Qualification: "MCA, B.Ed.", Experience: "7 years", ImageURL: "https://via.placeholder.com/200x200?text=Teacher"},
	{Name: "Mr. Suresh Yadav", Designation: "Sports Coach", Department: "Physical Education", Qualification: "M.P.Ed.", Experience: "14 years", ImageURL: "https://via.placeholder.com/200x200?text=Coach"},
}

var PlaceholderDisclosures = []*Disclosure{
	{Title: "School Affiliation Certificate", FileName: "affiliation.pdf", FileURL: "#", UploadDate: "2024-01-15", Category: "Affiliation"},
	{Title: "Trust Registration Certificate", FileName: "trust.pdf", FileURL: "#", UploadDate: "2024-01-15", Category: "General"},
	{Title: "NOC from State Government", FileName: "noc.pdf", FileURL: "#", UploadDate: "2024-01-15", Category: "General"},
	{Title: "Recognition Certificate", FileName: "recognition.pdf", FileURL: "#", UploadDate: "2024-01-15", Category: "Affiliation"},
	{Title: "Building Safety Certificate", FileName: "safety.pdf", FileURL: "#", UploadDate: "2024-01-15", Category: "Safety & Security"},
	{Title: "Fire Safety Certificate", FileName: "fire.pdf", FileURL: "#", UploadDate: "2024-01-15", Category: "Safety & Security"},
	{Title: "Land Certificate", FileName: "land.pdf", FileURL: "#", UploadDate: "2024-01-15", Category: "Infrastructure"},
	{Title: "Fee Structure Document", FileName: "fees.pdf", FileURL: "#", UploadDate: "2024-01-15", Category: "Financial"},
	{Title: "Faculty List with Qualifications", FileName: "faculty.pdf", FileURL: "#", UploadDate: "2024-01-15", Category: "Faculty"},
	{Title: "Academic Calendar", FileName: "calendar.pdf", FileURL: "#", UploadDate: "2024-01-15", Category: "Academic"},
}
