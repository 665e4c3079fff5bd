package toml

import "github.com/bnema/kb-summarizer/internal/domain"

// builtinProfiles is served when no profiles file exists yet.
var builtinProfiles = []domain.Profile{
	{
		Name: "work",
		Role: "Technical Architect and Senior Software Engineer",
		Description: "I am a technical architect at a consulting firm. My day to day duties involve API design, " +
			"creating internal tools in ruby, system design, devops, and general programming as necessary. " +
			"I am skilled in most areas but ruby is a particularly new area for me. I have experience with python, " +
			"java, javascript, typescript, and golang. I know AWS fairly well but Azure is pretty lacking. " +
			"In terms of devops I am familiar with Gitlab CI and Jenkins but not much else. " +
			"Much of my day to day involves API design via open api specifications. But a fair bit of it also " +
			"involves creating internal tooling using core ruby (meaning not ruby on rails).",
	},
}
