package portfolio

var defaultProfile = Profile{
	Name:     "Taha",
	FullName: "Taha RACHID",
	Role: Text{
		EN: "Software Engineer Student | Big Data & Machine Learning",
		FR: "Étudiant Ingénieur Logiciel | Big Data & Machine Learning",
	},
	Email:    "taha124rachid@gmail.com",
	GitHub:   "https://github.com/TRach07",
	LinkedIn: "https://www.linkedin.com/in/taha-rachid-/",
	Location: Text{EN: "Île-de-France", FR: "Île-de-France"},
	Avatar:   "/images/Photo.png",
}

var defaultProjects = []Project{
	{
		ID:    "portfolio-os",
		Title: "TahaOS Portfolio",
		Description: Text{
			EN: "An interactive OS-style portfolio built with Next.js, TypeScript, and Three.js. Features draggable windows, a terminal, and 3D particle backgrounds.",
			FR: "Un portfolio interactif style OS construit avec Next.js, TypeScript et Three.js. Avec des fenêtres déplaçables, un terminal et un fond 3D de particules.",
		},
		TechStack: []string{"Next.js", "TypeScript", "Tailwind CSS", "Three.js", "Framer Motion"},
		GitHubURL: "https://github.com/TRach07/portfolio",
		LiveURL:   "https://TRach07.dev",
		Image:     "/images/projects/portfolio.png",
	},
	{
		ID:          "project-2",
		Title:       "Project Two",
		Description: Text{EN: "Project description", FR: "Description du projet."},
		TechStack:   []string{"React", "Node.js", "MongoDB"},
		GitHubURL:   "https://github.com/TRach07/project-2",
		Image:       "/images/projects/project2.png",
	},
	{
		ID:          "project-3",
		Title:       "Project Three",
		Description: Text{EN: "Project description", FR: "Description du projet."},
		TechStack:   []string{"Python", "FastAPI", "PostgreSQL"},
		GitHubURL:   "https://github.com/TRach07/project-3",
		Image:       "/images/projects/project3.png",
	},
}

var defaultSkills = []SkillCategory{
	{
		ID:       "languages",
		TitleKey: "skills.languages",
		Skills: []Skill{
			{"Java", 85}, {"Python", 80}, {"JavaScript / TypeScript", 85}, {"C", 70},
			{"C#", 65}, {"SQL", 90}, {"Scala", 50},
		},
	},
	{
		ID:       "web",
		TitleKey: "skills.web",
		Skills: []Skill{
			{"React / Next.js", 85}, {"Node.js / Nest.js", 80}, {"Spring Boot", 75},
			{".NET", 65}, {"HTML / CSS", 90}, {"PHP", 60},
		},
	},
	{
		ID:       "databases",
		TitleKey: "skills.databases",
		Skills: []Skill{
			{"PostgreSQL / MySQL", 90}, {"SQL Server", 90}, {"MongoDB", 75},
			{"Redis", 65}, {"Cassandra", 60}, {"Neo4j", 55},
		},
	},
	{
		ID:       "bigdata",
		TitleKey: "skills.bigdata",
		Skills: []Skill{
			{"Hadoop", 65}, {"Kafka", 70}, {"Flink", 60}, {"Talend / ETL", 65},
			{"Azure", 60}, {"Elasticsearch / Kibana", 70},
		},
	},
	{
		ID:       "ml",
		TitleKey: "skills.ml",
		Skills: []Skill{
			{"Supervised / Unsupervised", 75}, {"Reinforcement Learning", 60},
			{"CNN / RNN", 70}, {"Transformers / LLM", 65},
		},
	},
	{
		ID:       "devops",
		TitleKey: "skills.devops",
		Skills: []Skill{
			{"Docker", 75}, {"Ansible", 60}, {"Git", 85}, {"SonarCloud", 65}, {"UML / Merise", 70},
		},
	},
}
