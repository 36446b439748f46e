package portfolio

var defaultCertificates = []Certificate{
	{
		ID:     "cert-1",
		Title:  "Advanced Prompt Engineering with ChatGPT",
		Issuer: "upGrad",
		Date:   "10/2025",
		Description: Text{
			EN: "Advanced Prompt Engineering · Generative AI · Few-shot · Automation",
			FR: "Prompt engineering avancé · IA générative · Few-shot · Automatisation",
		},
		Badge:     "/icons/badges/upGrad.png",
		File:      "/certificates/Prompt_Engineering_Certificate.pdf",
		VerifyURL: "https://certificates.upgrad.com/19175115-be6c-49df-88de-f960602fc255-Free%20Course%20Completion-KrcuTTTWnr7Cs9dy.jpeg",
	},
	{
		ID:     "cert-2",
		Title:  "Microsoft Certified: Azure AI Fundamentals",
		Issuer: "Microsoft",
		Date:   "05/2025",
		Description: Text{
			EN: "Core AI & ML Concepts · Azure Cognitive Services · Computer Vision · NLP · Responsible AI",
			FR: "Fondamentaux de l’IA & du ML · Services cognitifs Azure · Vision par ordinateur · NLP · IA responsable",
		},
		Badge:     "/icons/badges/ai900.png",
		File:      "/certificates/ai900.pdf",
		VerifyURL: "https://www.credly.com/badges/61a3c0d3-292d-4769-a555-e8859cffd0ca",
	},
	{
		ID:     "cert-3",
		Title:  "L2 Administration Certification",
		Issuer: "Ivalua Academy",
		Date:   "11/2024",
		Description: Text{
			EN: "Advanced skills in configuring and managing the Ivalua platform, with in-depth understanding of functionalities and processes",
			FR: "Compétences avancées en configuration et gestion de la plateforme Ivalua, avec une compréhension approfondie des fonctionnalités et des processus.",
		},
		Badge: "/icons/badges/ivaluaAcademy.png",
		File:  "/certificates/l2.pdf",
	},
	{
		ID:     "cert-4",
		Title:  "L1 Certification",
		Issuer: "Ivalua Academy",
		Date:   "10/2024",
		Description: Text{
			EN: "Foundational knowledge of the Ivalua platform, covering core modules and standard usages.",
			FR: "Découverte et maîtrise des fonctionnalités de base de la plateforme Ivalua, gestion des modules clés et usages standards.",
		},
		Badge: "/icons/badges/ivaluaAcademy.png",
		File:  "/certificates/l1.pdf",
	},
	{
		ID:     "cert-5",
		Title:  "Certified C Language",
		Issuer: "Sololearn",
		Date:   "02/2023",
		Description: Text{
			EN: "Fundamental understanding of C language basics and structured programming",
			FR: "Maîtrise des bases du langage C et de la programmation structurée",
		},
		Badge:     "/icons/badges/sololearn.png",
		File:      "/certificates/cert-C.pdf",
		VerifyURL: "https://www.sololearn.com/en/certificates/CT-0RXIZS84",
	},
	{
		ID:     "cert-6",
		Title:  "Certified Python Language",
		Issuer: "Sololearn",
		Date:   "02/2023",
		Description: Text{
			EN: "Fundamental understanding of Python programming basics",
			FR: "Maîtrise des bases du langage Python et des concepts fondamentaux de programmation",
		},
		Badge:     "/icons/badges/sololearn.png",
		File:      "/certificates/cert-Python.pdf",
		VerifyURL: "https://www.sololearn.com/en/certificates/CT-N8QKPGIT",
	},
}

var defaultEducation = []Education{
	{
		ID:       "edu-1",
		School:   Text{EN: "EFREI Engineering School", FR: "École d'ingénieurs EFREI"},
		Degree:   Text{EN: "Engineering Degree - Big Data & Machine Learning (Bac+4/5)", FR: "Diplôme d'ingénieur - Big Data & Machine Learning (Bac+4/5)"},
		Period:   "08/2024 - 10/2026",
		Location: "Villejuif (94), France",
		Logo:     "/icons/badges/efrei.png",
	},
	{
		ID: "edu-2",
		School: Text{
			EN: "École d'Ingénieurs du Littoral - Côte d'Opale (EILCO)",
			FR: "École d'Ingénieurs du Littoral - Côte d'Opale (EILCO)",
		},
		Degree:   Text{EN: "Engineering Degree - Computer Science (Bac+1/2/3)", FR: "Diplôme d'ingénieur - Informatique (Bac+1/2/3)"},
		Period:   "09/2021 - 07/2024",
		Location: "Calais (62), France",
		Logo:     "/icons/badges/eilco.png",
	},
	{
		ID:       "edu-3",
		School:   Text{EN: "Lycée Technique Ibn Al Haitam", FR: "Lycée Technique Ibn Al Haitam"},
		Degree:   Text{EN: "Baccalaureate - Mathematics Sciences B", FR: "Baccalauréat - Sciences mathématiques B"},
		Period:   "09/2020 - 07/2021",
		Location: "Ouarzazate (45), Maroc",
		Logo:     "/icons/badges/ministere_educ_maroc.png",
	},
}

var defaultExperience = []Experience{
	{
		ID:       "exp-1",
		Role:     Text{EN: "Software Engineer Apprentice", FR: "Ingénieur Logiciel en Alternance"},
		Company:  "Ivalua",
		Type:     Text{EN: "Apprenticeship", FR: "Contrat en alternance"},
		Period:   "10/2024 - 08/2026",
		Location: "Massy, Île-de-France, France",
		Description: Text{
			EN: "Software Engineer Apprentice in the R&D Solutions team. Contributing to bug fixing and developing new features across backend and frontend. Working with Agile methodologies using C#, .NET, SQL Server, HTML, LESS, and TypeScript. Utilizing internal tools to streamline workflows and improve product quality.",
			FR: "Ingénieur logiciel en alternance dans l'équipe R&D Solutions. Contribution à la correction de bugs et au développement de nouvelles fonctionnalités backend et frontend. Travail en méthodologie Agile avec C#, .NET, SQL Server, HTML, LESS et TypeScript. Utilisation d'outils internes pour optimiser les workflows et améliorer la qualité produit.",
		},
		Logo: "/icons/badges/ivalua.png",
	},
	{
		ID:       "exp-2",
		Role:     Text{EN: "IT Intern - Systems & Networks", FR: "Stagiaire - Systèmes & Réseaux"},
		Company:  "Mairie de Calais",
		Type:     Text{EN: "Internship", FR: "Stage · 2 mois"},
		Period:   "01/2023 - 02/2023",
		Location: "Calais, Hauts-de-France, France",
		Description: Text{
			EN: "Systems & Networks department:\n- Network switch configuration\n- Hardware maintenance\n- OS configuration and installation",
			FR: "Services systèmes et réseaux :\n- Configuration des switchs réseau\n- Maintenance du matériel informatique\n- Configuration et installation des systèmes d'exploitation",
		},
		Logo: "/icons/badges/mairie-calais.png",
	},
}

var defaultOtherExperience = []Experience{
	{
		ID:       "other-1",
		Role:     Text{EN: "Delivery Driver & Team Member", FR: "Équipier Livreur Polyvalent"},
		Company:  "Domino's Pizza",
		Type:     Text{EN: "Student Job", FR: "Job étudiant"},
		Period:   "04/2023 - 08/2024",
		Location: "Calais (62), France",
		Description: Text{
			EN: "Production, order preparation, customer service, and home delivery.",
			FR: "Production, préparation des commandes, service client et livraison à domicile.",
		},
		Logo: "/icons/badges/domino's.png",
	},
	{
		ID:       "other-2",
		Role:     Text{EN: "Public Works Technician", FR: "Adjoint Technique Territorial"},
		Company:  "Mairie de Calais",
		Type:     Text{EN: "Seasonal Contract", FR: "Contrat saisonnier"},
		Period:   "07/2023 - 08/2023",
		Location: "Calais (62), France",
		Description: Text{
			EN: "Contribution to coastal preservation and improvement of public facilities.",
			FR: "Contribution à la préservation côtière et amélioration des installations publiques.",
		},
		Logo: "/icons/badges/mairie-calais.png",
	},
	{
		ID:       "other-3",
		Role:     Text{EN: "Youth & Inclusion Coordinator", FR: "Animateur"},
		Company:  "Cap Évasion",
		Type:     Text{EN: "Seasonal Contract", FR: "Contrat saisonnier"},
		Period:   "07/2022 - 08/2022",
		Location: "Jonzac (17), France",
		Description: Text{
			EN: "Leading and supervising inclusive activities for people with mental disabilities.",
			FR: "Animation et encadrement d'activités inclusives pour personnes en difficulté (handicap mental).",
		},
		Logo: "/icons/badges/cap_evasion.png",
	},
}
