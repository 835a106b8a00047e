package catalog

import "edubridge/backend/models"

// fixtureCourses returns the fixed EduBridge course data. The catalog layer
// treats this as immutable; a fresh slice is built per call so tests cannot
// corrupt it.
func fixtureCourses() []models.Course {
	return []models.Course{
		{
			ID:          "1",
			Title:       "Digital Literacy Basics",
			Description: "Learn the fundamental digital skills needed to navigate the modern world. Perfect for beginners starting their digital journey.",
			Level:       models.LevelBeginner,
			Duration:    "4 weeks",
			Category:    "Digital Skills",
			Students:    1247,
			TeacherID:   "1",
			TeacherName: "Dr. Amina Okafor",
			Lessons: []models.Lesson{
				{
					ID:       "1-1",
					Title:    "Introduction to Computers",
					Duration: "15 min",
					Order:    1,
					Resources: []models.Resource{
						{ID: "r1-1", Name: "Computer Basics Guide.pdf", Type: models.ResourcePDF, Size: "2.3 MB", DownloadURL: "#"},
						{ID: "r1-2", Name: "Hardware Components Chart.jpg", Type: models.ResourceImage, Size: "450 KB", DownloadURL: "#"},
					},
					Content: `
# Introduction to Computers

## What is a Computer?

A computer is an electronic device that processes information and performs tasks according to instructions. In today's world, computers are everywhere - in phones, laptops, tablets, and even watches!

## Basic Components

### Hardware
- **Input Devices**: Keyboard, mouse, touchscreen
- **Processing Unit**: The "brain" (CPU) that does calculations
- **Output Devices**: Monitor, speakers, printer
- **Storage**: Where files and programs are kept

### Software
Software is the set of instructions that tells hardware what to do. There are two main types:
- **System Software**: Like Windows, macOS, or Linux
- **Application Software**: Programs you use daily like WhatsApp, Chrome, or Microsoft Word

## Why Learn About Computers?

Understanding computers helps you:
- Communicate with people worldwide
- Access information and educational resources
- Find job opportunities
- Solve problems efficiently
- Create and share your ideas

## Key Takeaway

Computers are tools that amplify human capability. The more you understand them, the more you can achieve with them!
`,
				},
				{
					ID:       "1-2",
					Title:    "Using the Internet Safely",
					Duration: "20 min",
					Order:    2,
					Resources: []models.Resource{
						{ID: "r1-3", Name: "Internet Safety Checklist.pdf", Type: models.ResourcePDF, Size: "1.8 MB", DownloadURL: "#"},
						{ID: "r1-4", Name: "Password Security Guide.pdf", Type: models.ResourcePDF, Size: "1.2 MB", DownloadURL: "#"},
					},
					Content: `
# Using the Internet Safely

## What is the Internet?

The internet is a global network that connects millions of computers and devices worldwide. It allows us to access information, communicate, and share resources.

## Internet Safety Tips

### 1. Protect Your Personal Information
- Never share passwords with anyone
- Be careful about posting personal details online
- Use privacy settings on social media

### 2. Recognize Scams and Phishing
- Be suspicious of emails asking for personal information
- Don't click on suspicious links
- Verify website URLs before entering information

### 3. Use Strong Passwords
- Use a mix of letters, numbers, and symbols
- Make passwords at least 8 characters long
- Don't use the same password everywhere

### 4. Safe Browsing Habits
- Look for "https://" in website addresses
- Install antivirus software if possible
- Keep your software updated
`,
				},
				{
					ID:       "1-3",
					Title:    "Email and Communication",
					Duration: "18 min",
					Order:    3,
					Content: `
# Email and Communication

## Understanding Email

Email (electronic mail) is one of the most important digital communication tools. It's used for personal communication, education, and professional purposes.

## Parts of an Email Address

An email address has two parts:
- **Username**: yourname
- **Domain**: @gmail.com, @yahoo.com, etc.

Example: yourname@gmail.com

## Writing Effective Emails

### Structure of a Good Email
1. **Subject Line**: Clear and specific
2. **Greeting**: "Dear..." or "Hello..."
3. **Body**: Your message, clear and concise
4. **Closing**: "Best regards," "Thank you," etc.
5. **Signature**: Your name and contact info

### Email Etiquette
- Check spelling and grammar
- Be polite and professional
- Reply within 24-48 hours

## Practice Activity

Try composing an email introducing yourself to a potential employer or teacher. Include all the elements of a professional email!
`,
				},
				{
					ID:       "1-4",
					Title:    "File Management Basics",
					Duration: "15 min",
					Order:    4,
					Content: `
# File Management Basics

## What are Files and Folders?

**Files** are digital documents (like photos, documents, videos) stored on your computer.
**Folders** are containers that help organize your files, similar to physical folders in a filing cabinet.

## Organizing Your Files

- Create folders for each subject or project
- Use clear, descriptive file names
- Delete files you no longer need
- Back up important files regularly

## Key Takeaway

A tidy file system saves time and protects your work. Organize as you go rather than all at once!
`,
				},
			},
		},
		{
			ID:          "2",
			Title:       "Introduction to Web Development",
			Description: "Start your journey into web development. Learn HTML, CSS, and basic JavaScript to build your first website.",
			Level:       models.LevelBeginner,
			Duration:    "6 weeks",
			Category:    "Programming",
			Students:    892,
			Lessons: []models.Lesson{
				{
					ID:       "2-1",
					Title:    "What is Web Development?",
					Duration: "12 min",
					Order:    1,
					Content: `
# What is Web Development?

## Introduction

Web development is the process of creating websites and web applications. Every website you visit - from Google to Facebook to your school's site - was built by web developers!

## Types of Web Development

### 1. Front-End Development
- What users see and interact with
- Uses HTML, CSS, and JavaScript
- Focuses on design and user experience

### 2. Back-End Development
- Server-side logic and databases
- Handles data processing
- Uses languages like Python, Node.js, PHP

### 3. Full-Stack Development
- Combination of front-end and back-end
- Can build complete web applications

## Career Opportunities in Africa

Web development is one of the fastest-growing fields in Africa:
- Many remote job opportunities
- Growing tech hubs in Lagos, Nairobi, Cape Town
- Freelancing platforms like Upwork, Fiverr

## Getting Started

All you need is:
- A computer (even a basic one works!)
- A text editor (we'll show you free options)
- A web browser
- Internet connection (low bandwidth is fine!)

Let's begin your journey!
`,
				},
				{
					ID:       "2-2",
					Title:    "HTML Fundamentals",
					Duration: "25 min",
					Order:    2,
					Content: `
# HTML Fundamentals

## What is HTML?

HTML (HyperText Markup Language) is the foundation of every website. It provides the structure and content of web pages.

## Basic HTML Structure

    <!DOCTYPE html>
    <html>
      <head>
        <title>My First Web Page</title>
      </head>
      <body>
        <h1>Welcome to My Website</h1>
        <p>This is a paragraph.</p>
      </body>
    </html>

## Common Elements

- Headings: h1 through h6
- Paragraphs: p
- Links: a
- Images: img
- Lists: ul, ol, li

## Next Steps

Once you're comfortable with HTML, we'll add styling with CSS to make it look beautiful!
`,
				},
			},
		},
		{
			ID:          "3",
			Title:       "Microsoft Office Essentials",
			Description: "Master Word, Excel, and PowerPoint - essential tools for students and professionals across Africa.",
			Level:       models.LevelBeginner,
			Duration:    "3 weeks",
			Category:    "Productivity",
			Students:    2156,
			Lessons: []models.Lesson{
				{
					ID:       "3-1",
					Title:    "Microsoft Word Basics",
					Duration: "20 min",
					Order:    1,
					Content: `
# Microsoft Word Basics

## Introduction

Microsoft Word is a word processing program used for creating documents like letters, reports, resumes, and assignments.

## Getting Started

### Creating a New Document
1. Open Microsoft Word
2. Click "Blank Document"
3. Start typing!

## Essential Features

### Formatting Text
- **Font**: Change typeface and size
- **Bold/Italic/Underline**: Emphasize text
- **Colors**: Make text stand out
- **Alignment**: Left, center, right, justify

## Practice Activity

Create a one-page document about yourself. Use at least 3 different formatting features!
`,
				},
			},
		},
		{
			ID:          "4",
			Title:       "Social Media for Business",
			Description: "Learn how to use social media platforms effectively for business and personal branding in the African market.",
			Level:       models.LevelIntermediate,
			Duration:    "4 weeks",
			Category:    "Marketing",
			Students:    645,
			Lessons: []models.Lesson{
				{
					ID:       "4-1",
					Title:    "Introduction to Social Media Marketing",
					Duration: "18 min",
					Order:    1,
					Content: `
# Introduction to Social Media Marketing

## Why Social Media Matters for African Businesses

Social media has transformed how businesses reach customers in Africa. With over 500 million internet users across the continent, social platforms offer unprecedented opportunities.

## Popular Platforms in Africa

### 1. Facebook
- Largest user base
- Great for community building
- Affordable advertising
- Facebook Marketplace for selling

### 2. Instagram
- Visual storytelling
- Consider data costs (use images wisely)
- Post when your audience is most active

## Next Steps

In upcoming lessons, we'll dive deeper into:
- Creating engaging content
- Running effective ads
- Building your brand
- Measuring success

Let's build your social media presence!
`,
				},
			},
		},
	}
}
