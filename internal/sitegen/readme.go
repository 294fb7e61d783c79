package sitegen

import (
	"fmt"
	"strings"
	"time"

	"github.com/azizcs/portfolio-maker/internal/domain/user"
)

// GenerateReadme builds the README.md committed next to the generated page: a
// human-readable summary with the live-site link, contact fields and the
// generation date.
func GenerateReadme(u *user.User, repoName string) string {
	pageURL := fmt.Sprintf("https://%s.github.io/%s", u.GithubUsername, repoName)

	jobTitle := deref(u.JobTitle)
	if jobTitle == "" {
		jobTitle = "a professional"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s - Portfolio Website\n\n", u.Name)
	sb.WriteString("Welcome to my personal portfolio website! 🚀\n\n")
	sb.WriteString("## About\n\n")
	fmt.Fprintf(&sb, "This is my professional portfolio showcasing my work, skills, and experience as %s.\n", jobTitle)

	if bio := deref(u.Bio); bio != "" {
		fmt.Fprintf(&sb, "\n## About Me\n\n%s\n", bio)
	}

	sb.WriteString("\n## 🌐 Live Website\n\n")
	fmt.Fprintf(&sb, "Visit my portfolio: [%s Portfolio](%s)\n\n", u.Name, pageURL)

	sb.WriteString("## 🛠️ Built With\n\n")
	sb.WriteString("- HTML5 & CSS3\n")
	sb.WriteString("- Responsive Design\n")
	sb.WriteString("- Modern Web Standards\n")
	sb.WriteString("- Generated using Portfolio Maker\n\n")

	sb.WriteString("## 📱 Features\n\n")
	sb.WriteString("- 📱 Fully responsive design\n")
	sb.WriteString("- 🎨 Clean and modern UI\n")
	sb.WriteString("- ⚡ Fast loading\n")
	sb.WriteString("- 🌙 Dark mode support\n")
	sb.WriteString("- 📧 Contact information\n")
	sb.WriteString("- 💼 Project showcase\n")
	if len(u.Skills) > 0 {
		sb.WriteString("- 🔧 Skills showcase\n")
	}
	if cv := normalizePtr(u.CVURL); cv != "" {
		sb.WriteString("- 📄 CV/Resume download\n")
	}

	sb.WriteString("\n## 📞 Contact\n\n")
	if u.Email != "" {
		fmt.Fprintf(&sb, "- Email: [%s](mailto:%s)\n", u.Email, u.Email)
	}
	if linkedin := normalizePtr(u.Linkedin); linkedin != "" {
		fmt.Fprintf(&sb, "- LinkedIn: [Profile](%s)\n", linkedin)
	}
	githubURL := normalizePtr(u.GithubURL)
	if githubURL == "" && u.GithubUsername != "" {
		githubURL = "https://github.com/" + u.GithubUsername
	}
	if githubURL != "" {
		fmt.Fprintf(&sb, "- GitHub: [Profile](%s)\n", githubURL)
	}
	if website := normalizePtr(u.Website); website != "" {
		fmt.Fprintf(&sb, "- Website: [%s](%s)\n", website, website)
	}
	if cv := normalizePtr(u.CVURL); cv != "" {
		fmt.Fprintf(&sb, "- CV/Resume: [Download](%s)\n", cv)
	}

	sb.WriteString("\n## 🔄 Last Updated\n\n")
	sb.WriteString(time.Now().Format("1/2/2006"))
	sb.WriteString("\n\n---\n\n")
	sb.WriteString("*This portfolio was automatically generated and deployed using Portfolio Maker.*\n")

	return sb.String()
}
