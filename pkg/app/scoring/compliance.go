package scoring

type controlMapping struct {
	controls    []string
	description string
	remediation string
}

// complianceMappings ties each leakage category to the controls it violates
// per framework. Frameworks or categories without an entry contribute nothing.
var complianceMappings = map[string]map[string]controlMapping{
	"SOC2": {
		"cross_user": {
			controls:    []string{"CC6.1", "CC6.6", "CC6.7"},
			description: "Logical access controls failed to prevent unauthorized data access",
			remediation: "Implement stricter tenant isolation",
		},
		"training_data": {
			controls:    []string{"CC6.1", "CC7.2"},
			description: "Confidential information processing controls inadequate",
			remediation: "Review data retention and access policies",
		},
		"context_boundary": {
			controls:    []string{"CC6.1", "CC6.6"},
			description: "Multi-tenant isolation controls insufficient",
			remediation: "Enhance workspace isolation mechanisms",
		},
		"system_prompt": {
			controls:    []string{"CC7.2"},
			description: "System configuration information exposed",
			remediation: "Review system prompt protection mechanisms",
		},
		"pii_leakage": {
			controls:    []string{"CC6.1", "CC6.6", "CC7.1", "CC7.2"},
			description: "PII protection controls failed",
			remediation: "Implement enhanced PII detection and blocking",
		},
	},
	"ISO27001": {
		"cross_user": {
			controls:    []string{"A.9.2.1", "A.9.4.1", "A.9.4.5"},
			description: "User access management and system access control failure",
			remediation: "Strengthen access control policy implementation",
		},
		"training_data": {
			controls:    []string{"A.8.2.3", "A.12.3.1"},
			description: "Information backup and data protection failure",
			remediation: "Review data protection controls",
		},
		"context_boundary": {
			controls:    []string{"A.9.1.2", "A.9.4.1"},
			description: "Access to networks and network services compromised",
			remediation: "Enhance network segmentation controls",
		},
		"system_prompt": {
			controls:    []string{"A.12.4.1", "A.12.4.2"},
			description: "Event logging and monitoring failure",
			remediation: "Implement comprehensive audit logging",
		},
		"pii_leakage": {
			controls:    []string{"A.8.2.1", "A.8.2.2", "A.9.2.1"},
			description: "Classification of information and access control failure",
			remediation: "Strengthen information classification controls",
		},
	},
	"CPCSC": {
		"cross_user": {
			controls:    []string{"SA-4", "AC-3", "AC-6"},
			description: "Acquisition process and access enforcement controls insufficient",
			remediation: "Validate vendor security claims before deployment",
		},
		"training_data": {
			controls:    []string{"SC-28", "MP-6"},
			description: "Protection of information at rest and media sanitization",
			remediation: "Review data handling procedures",
		},
		"context_boundary": {
			controls:    []string{"AC-4", "SC-7"},
			description: "Information flow enforcement and boundary protection",
			remediation: "Implement stronger boundary controls",
		},
		"system_prompt": {
			controls:    []string{"CM-3", "CM-6"},
			description: "Configuration change control",
			remediation: "Review configuration management procedures",
		},
		"pii_leakage": {
			controls:    []string{"AC-3", "AC-16", "SC-28"},
			description: "Access enforcement and security attributes",
			remediation: "Implement enhanced access controls",
		},
	},
	"NIST_AI_RMF": {
		"cross_user": {
			controls:    []string{"GOVERN-1.2", "MAP-2.3", "MEASURE-2.5"},
			description: "AI system boundaries and privacy risks not adequately managed",
			remediation: "Enhance AI system monitoring and data governance",
		},
		"training_data": {
			controls:    []string{"GOVERN-5.1", "MAP-1.2", "MEASURE-1.1"},
			description: "Data governance and AI risk management process failure",
			remediation: "Strengthen data governance policies",
		},
		"context_boundary": {
			controls:    []string{"MAP-2.1", "MEASURE-2.1"},
			description: "AI system categorization and context management failure",
			remediation: "Implement robust context isolation",
		},
		"system_prompt": {
			controls:    []string{"GOVERN-3.1", "MEASURE-2.5"},
			description: "Risk management strategy and AI system assessment",
			remediation: "Review AI system security controls",
		},
		"pii_leakage": {
			controls:    []string{"MAP-1.6", "MEASURE-2.3"},
			description: "Privacy risk management failure",
			remediation: "Enhance privacy-preserving mechanisms",
		},
	},
}

// vendorPromises is the static registry of data-handling guarantees checked
// against observed leakage.
var vendorPromises = map[string]map[string]string{
	"openai": {
		"enterprise": "Your data is isolated and not shared with other organizations",
		"public":     "Conversations are private to your account",
	},
	"anthropic": {
		"enterprise": "Your data is isolated and not shared with other organizations",
		"public":     "Conversations are private and secure",
	},
	"google": {
		"enterprise": "Your data is isolated and not shared with other organizations",
		"public":     "Your data is protected and private",
	},
	"ollama": {
		"local": "Data processed locally without external transmission",
	},
}
