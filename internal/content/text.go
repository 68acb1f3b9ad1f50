package content

var (
	AboutMe = `I'm **DEMO**, a results-driven Software Engineer with 4.7 years of experience in
full-stack development, AI integration, and cloud-based enterprise systems. I specialize in
combining code and creativity to build *secure, fast, and intelligent* web solutions.`

	AIInnovation = `Leveraging AI-driven development and prompt engineering to optimize workflows,
enhance code quality, and maintain robust security across products and platforms.`

	ContactIntro = `Have a project in mind or just want to say hello? Reach out anytime.`
)

// SceneURL is the interactive 3D scene shown in the hero, AI and contact sections.
const SceneURL = "https://prod.spline.design/4cHQr84zOGAHOehh/scene.splinecode"

// Default returns the portfolio's content.
func Default() Page {
	return Page{
		Profile: Profile{
			Name:       "DEMO",
			Tagline:    "Software Engineer • 4.7+ years",
			Headline:   "Building Secure, Scalable & AI-Driven Web Applications.",
			Intro:      "I craft robust, enterprise-grade products blending ASP.NET, React, TypeScript and AI to deliver speed, security and intelligence.",
			Email:      "demo@example.com",
			Phone:      "+91-0000000000",
			LinkedIn:   "https://linkedin.com/in/demo177",
			GitHub:     "https://github.com",
			Location:   "India",
			ResumePath: "/static/resume.txt",
		},
		SceneURL: SceneURL,
		About:    AboutMe,
		Highlights: []Highlight{
			{"Secure", "OWASP-aware, robust auth and data protection"},
			{"Scalable", "Optimized APIs, caching and DB tuning"},
			{"AI-Driven", "Prompt engineering + AI-assisted workflows"},
		},
		Timeline: []Milestone{
			{"2017 – 2021", "B.Tech (CSE), SISTec Bhopal"},
			{"2021 – Present", "Software Engineer, MindRuby Technology LLP"},
		},
		SkillGroups: []SkillGroup{
			{"Frontend", []string{"React.js", "TypeScript", "JavaScript", "HTML5", "CSS3", "Bootstrap"}},
			{"Backend", []string{"ASP.NET", "C#", "SQL Server", "Python", "API Design"}},
			{"Cloud", []string{"Azure", "AWS", "Linux", "Git", "Agile/Scrum"}},
			{"AI", []string{"AI Integration", "Prompt Engineering"}},
		},
		Roles: []Role{
			{
				Title:    "Software Engineer",
				Company:  "MindRuby Technology LLP",
				Duration: "2021 – Present",
				Bullets: []string{
					"Agile development across full-stack projects with ASP.NET, React & SQL Server",
					"AI-enhanced tools and prompt engineering to accelerate development",
					"Optimized backend performance and improved database security",
				},
			},
		},
		Projects: []Project{
			{Title: "E-Commerce Platform", Stack: "ASP.NET MVC, SQL Server", CodeURL: "#", DemoURL: "#"},
			{Title: "Web Scraping Real Estate System", Stack: "Python, HTML, CSS, JS", CodeURL: "#", DemoURL: "#"},
			{Title: "Anime Music System", Stack: "HTML, CSS, Bootstrap, JS", CodeURL: "#", DemoURL: "#"},
			{Title: "Crawler-based Search Engine", Stack: "Python", CodeURL: "#", DemoURL: "#"},
		},
		Degrees: []Degree{
			{Title: "B.Tech (CSE) – SISTec, Bhopal", Period: "2017–2021", Grade: "8.10 CGPA"},
		},
		Certifications: []string{"Azure Fundamentals (AZ-900)", "Python 3", "AWS", "Linux", "RHCSA"},
		AI:             AIInnovation,
		AIPoints: []string{
			"Intelligent code reviews and automated testing prompts",
			"AI-assisted API design, schema generation and migration planning",
			"Security-first AI linting and dependency risk analysis",
		},
		ContactIntro: ContactIntro,
	}
}
