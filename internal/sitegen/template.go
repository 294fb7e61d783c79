package sitegen

const portfolioTemplate = `<!DOCTYPE html>
<html lang="en" dir="ltr">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Name}} - Portfolio</title>
    <meta name="description" content="{{if .Bio}}{{.Bio}}{{else}}Portfolio of {{.Name}}{{end}}">
    <meta name="author" content="{{.Name}}">

    <!-- Open Graph / Facebook -->
    <meta property="og:type" content="website">
    {{if .PagesOrigin}}<meta property="og:url" content="{{.PagesOrigin}}">
    {{end}}<meta property="og:title" content="{{.Name}} - Portfolio">
    <meta property="og:description" content="{{if .Bio}}{{.Bio}}{{else}}Portfolio of {{.Name}}{{end}}">
    {{if .AvatarURL}}<meta property="og:image" content="{{.AvatarURL}}">
    {{end}}
    <!-- Twitter -->
    <meta property="twitter:card" content="summary_large_image">
    {{if .PagesOrigin}}<meta property="twitter:url" content="{{.PagesOrigin}}">
    {{end}}<meta property="twitter:title" content="{{.Name}} - Portfolio">
    <meta property="twitter:description" content="{{if .Bio}}{{.Bio}}{{else}}Portfolio of {{.Name}}{{end}}">
    {{if .AvatarURL}}<meta property="twitter:image" content="{{.AvatarURL}}">
    {{end}}
    <link href="https://fonts.googleapis.com/css2?family=Inter:wght@300;400;500;600;700&display=swap" rel="stylesheet">

    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }

        html { color-scheme: light !important; }

        :root {
            --primary-color: #4299e1;
            --primary-dark: #3182ce;
            --text-primary: #2d3748;
            --text-secondary: #4a5568;
            --text-muted: #718096;
            --bg-primary: #ffffff;
            --bg-secondary: #f7fafc;
            --bg-card: #ffffff;
            --border-color: #e2e8f0;
            --shadow: 0 4px 6px rgba(0, 0, 0, 0.05);
            --shadow-lg: 0 10px 25px rgba(0, 0, 0, 0.1);
            --border-radius: 0.5rem;
            --font-family: 'Inter', -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
        }

        .dark-mode {
            --primary-color: #4299e1;
            --primary-dark: #3182ce;
            --text-primary: #ffffff;
            --text-secondary: #e2e8f0;
            --text-muted: #a0aec0;
            --bg-primary: #2d3748;
            --bg-secondary: #4a5568;
            --bg-card: #4a5568;
            --border-color: #718096;
        }

        @media (prefers-color-scheme: dark) {
            html:not(.dark-mode) { color-scheme: light !important; }
        }

        body {
            font-family: var(--font-family);
            line-height: 1.6;
            color: var(--text-primary);
            background: var(--bg-primary);
            min-height: 100vh;
            overflow-x: hidden;
            -webkit-font-smoothing: antialiased;
        }

        .container { max-width: 1200px; margin: 0 auto; padding: 0 1rem; }

        .header {
            background: var(--bg-primary);
            border-bottom: 1px solid var(--border-color);
            position: sticky;
            top: 0;
            z-index: 100;
            backdrop-filter: blur(10px);
            box-shadow: 0 1px 5px rgba(0, 0, 0, 0.05);
        }

        .header-content {
            display: flex;
            justify-content: space-between;
            align-items: center;
            padding: 1rem 0;
        }

        .logo {
            display: flex;
            align-items: center;
            gap: 0.75rem;
            font-weight: 600;
            font-size: 1.125rem;
            text-decoration: none;
            color: var(--primary-color);
        }

        .logo img {
            width: 40px;
            height: 40px;
            border-radius: 50%;
            object-fit: cover;
            border: 2px solid var(--primary-color);
        }

        .nav { display: flex; gap: 2rem; }

        .nav a {
            text-decoration: none;
            color: var(--text-secondary);
            font-weight: 500;
            transition: all 0.2s;
        }

        .nav a:hover { color: var(--primary-color); }

        .theme-toggle {
            background: transparent;
            border: none;
            color: var(--text-secondary);
            width: 40px;
            height: 40px;
            border-radius: 50%;
            display: flex;
            align-items: center;
            justify-content: center;
            cursor: pointer;
            margin-left: 1rem;
            transition: all 0.2s;
        }

        .theme-toggle:hover {
            background-color: rgba(66, 153, 225, 0.1);
            color: var(--primary-color);
        }

        .hero { padding: 4rem 0; background: var(--bg-secondary); }

        .hero-content {
            display: grid;
            grid-template-columns: 2fr 1fr;
            gap: 3rem;
            align-items: center;
        }

        .hero-text h1 {
            font-size: 3rem;
            font-weight: 700;
            margin-bottom: 1rem;
            line-height: 1.2;
            color: var(--text-primary);
        }

        .hero-text .bio {
            font-size: 1.125rem;
            color: var(--text-secondary);
            margin-bottom: 2rem;
            line-height: 1.7;
            max-width: 600px;
        }

        .hero-image { text-align: center; }

        .hero-image img {
            width: 250px;
            height: 250px;
            border-radius: 50%;
            object-fit: cover;
            border: 4px solid var(--primary-color);
            box-shadow: var(--shadow-lg);
        }

        .btn {
            display: inline-flex;
            align-items: center;
            gap: 0.5rem;
            padding: 0.75rem 1.5rem;
            border-radius: 0.375rem;
            text-decoration: none;
            font-weight: 600;
            transition: all 0.3s;
            border: none;
            cursor: pointer;
            font-size: 0.875rem;
        }

        .btn-primary {
            background-color: var(--primary-color);
            color: white;
        }

        .btn-primary:hover { background-color: var(--primary-dark); }

        .btn-outline {
            background-color: transparent;
            color: var(--primary-color);
            border: 2px solid var(--primary-color);
        }

        .btn-outline:hover { background-color: rgba(66, 153, 225, 0.1); }

        .hero-buttons { display: flex; gap: 1rem; margin-bottom: 2rem; }

        .social-links { display: flex; gap: 1rem; flex-wrap: wrap; margin-top: 1rem; }

        .social-link {
            display: flex;
            align-items: center;
            gap: 0.5rem;
            padding: 0.6rem 1.2rem;
            background: var(--bg-card);
            border: 1px solid var(--border-color);
            border-radius: var(--border-radius);
            text-decoration: none;
            color: var(--text-secondary);
            transition: all 0.3s;
            box-shadow: var(--shadow);
            font-weight: 500;
        }

        .social-link:hover { border-color: var(--primary-color); color: var(--primary-color); }

        .social-icon { font-size: 1.5rem; line-height: 1; }

        .main { padding: 4rem 0; background: var(--bg-primary); }

        .section { margin-bottom: 4rem; }

        .section-title {
            font-size: 2rem;
            font-weight: 600;
            margin-bottom: 2rem;
            text-align: center;
            color: var(--text-primary);
        }

        .about-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(300px, 1fr));
            gap: 2rem;
            margin-top: 2rem;
        }

        .info-card {
            background: var(--bg-card);
            padding: 2rem;
            border-radius: 0.5rem;
            box-shadow: var(--shadow);
            text-align: center;
            border: 1px solid var(--border-color);
        }

        .info-card h3 { margin-bottom: 1rem; color: var(--primary-color); font-weight: 600; }

        .info-card .icon { font-size: 2rem; margin-bottom: 1.5rem; }

        .skills-container {
            display: flex;
            flex-wrap: wrap;
            gap: 0.75rem;
            justify-content: center;
            padding: 1rem;
        }

        .skill-tag {
            padding: 0.5rem 1.25rem;
            background: var(--primary-color);
            color: white;
            border-radius: 9999px;
            font-size: 0.875rem;
            font-weight: 500;
            margin: 0.25rem;
        }

        .projects-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(350px, 1fr));
            gap: 2rem;
        }

        .project-card {
            background: var(--bg-card);
            border-radius: 0.5rem;
            overflow: hidden;
            box-shadow: var(--shadow);
            border: 1px solid var(--border-color);
            display: flex;
            flex-direction: column;
        }

        .project-image { width: 100%; height: 200px; object-fit: cover; }

        .project-content {
            padding: 1.5rem;
            flex-grow: 1;
            display: flex;
            flex-direction: column;
        }

        .project-content h3 { margin-bottom: 0.75rem; color: var(--text-primary); font-size: 1.25rem; }

        .project-content p { color: var(--text-secondary); margin-bottom: 1.25rem; flex-grow: 1; }

        .tech-tags { display: flex; flex-wrap: wrap; gap: 0.5rem; margin-bottom: 1.25rem; }

        .tech-tag {
            padding: 0.25rem 0.75rem;
            background: rgba(66, 153, 225, 0.1);
            color: var(--primary-color);
            border-radius: 9999px;
            font-size: 0.75rem;
            font-weight: 500;
            white-space: nowrap;
        }

        .project-links { display: flex; gap: 0.75rem; }

        .contact-card {
            background: var(--bg-card);
            padding: 3rem;
            border-radius: var(--border-radius);
            box-shadow: var(--shadow);
            text-align: center;
            border: 1px solid var(--border-color);
            max-width: 600px;
            margin: 0 auto;
        }

        .contact-info { margin: 2rem 0; }

        .contact-info p { margin-bottom: 0.75rem; color: var(--text-secondary); }

        .contact-info a { color: var(--primary-color); text-decoration: none; }

        .contact-info a:hover { text-decoration: underline; }

        .footer {
            background: var(--bg-secondary);
            padding: 2rem 0;
            border-top: 1px solid var(--border-color);
            text-align: center;
            color: var(--text-muted);
        }

        .footer a { color: var(--primary-color); text-decoration: none; }

        .text-muted { color: var(--text-muted); }

        .tech-text {
            color: var(--primary-color);
            text-transform: uppercase;
            font-size: 0.95rem;
            font-weight: 500;
            letter-spacing: 0.5px;
        }

        @media (max-width: 768px) {
            .header-content { flex-direction: column; gap: 1rem; text-align: center; }
            .hero-content { grid-template-columns: 1fr; text-align: center; gap: 2rem; }
            .hero-text h1 { font-size: 2rem; }
            .hero-buttons { justify-content: center; }
            .projects-grid { grid-template-columns: 1fr; }
            .about-grid { grid-template-columns: 1fr; }
        }
    </style>
</head>
<body>
    <header class="header">
        <div class="container">
            <div class="header-content">
                <a href="#" class="logo">
                    {{if .AvatarURL}}<img src="{{.AvatarURL}}" alt="{{.Name}}">{{end}}
                    <span>{{.Name}}</span>
                </a>
                <nav class="nav">
                    <a href="#about">About</a>
                    {{if .Projects}}<a href="#projects">Projects</a>{{end}}
                    {{if .Skills}}<a href="#skills">Skills</a>{{end}}
                    <a href="#contact">Contact</a>
                </nav>
                <button id="theme-toggle" class="theme-toggle" aria-label="Toggle dark mode">
                    <svg xmlns="http://www.w3.org/2000/svg" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round">
                        <circle cx="12" cy="12" r="5"></circle>
                        <path d="M12 1v2M12 21v2M4.22 4.22l1.42 1.42M18.36 18.36l1.42 1.42M1 12h2M21 12h2M4.22 19.78l1.42-1.42M18.36 5.64l1.42-1.42"></path>
                    </svg>
                </button>
            </div>
        </div>
    </header>

    <section class="hero">
        <div class="container">
            <div class="hero-content">
                <div class="hero-text">
                    <h1>{{.Name}}</h1>
                    {{if .Bio}}<p class="bio">{{.Bio}}</p>{{end}}
                    <div class="hero-buttons">
                        <a href="#contact" class="btn btn-primary">Get In Touch</a>
                        {{if .CVURL}}<a href="{{.CVURL}}" target="_blank" class="btn btn-outline" rel="noopener noreferrer">Download CV</a>{{end}}
                    </div>
                    {{if .SocialLinks}}
                    <div class="social-links">
                        {{range .SocialLinks}}
                        <a href="{{.URL}}" target="_blank" class="social-link" title="{{.Platform}}">
                            <span class="social-icon">{{.Icon}}</span>
                            <span class="social-text">{{.Platform}}</span>
                        </a>
                        {{end}}
                    </div>
                    {{end}}
                </div>
                {{if .AvatarURL}}
                <div class="hero-image">
                    <img src="{{.AvatarURL}}" alt="{{.Name}}">
                </div>
                {{end}}
            </div>
        </div>
    </section>

    <main class="main">
        <div class="container">
            <section id="about" class="section">
                <h2 class="section-title">About Me</h2>
                <div class="about-grid">
                    {{if .Experience}}
                    <div class="info-card">
                        <div class="icon">💼</div>
                        <h3>Experience</h3>
                        <p>{{.Experience}}</p>
                    </div>
                    {{end}}
                    {{if .Education}}
                    <div class="info-card">
                        <div class="icon">🎓</div>
                        <h3>Education</h3>
                        <p>{{.Education}}</p>
                    </div>
                    {{end}}
                    <div class="info-card">
                        <div class="icon">⚡</div>
                        <h3>Specialization</h3>
                        <p class="tech-text">{{.FieldOfWork}}</p>
                    </div>
                    {{if .Location}}
                    <div class="info-card">
                        <div class="icon">📍</div>
                        <h3>Location</h3>
                        <p>{{.Location}}</p>
                    </div>
                    {{end}}
                </div>
            </section>

            {{if .Skills}}
            <section id="skills" class="section">
                <h2 class="section-title">Skills &amp; Technologies</h2>
                <div class="skills-container">
                    {{range .Skills}}<span class="skill-tag">{{.}}</span>
                    {{end}}
                </div>
            </section>
            {{end}}

            {{if .Projects}}
            <section id="projects" class="section">
                <h2 class="section-title">Featured Projects</h2>
                <div class="projects-grid">
                    {{range .Projects}}
                    <div class="project-card">
                        {{if .ImageURL}}<img src="{{.ImageURL}}" alt="{{.Title}}" class="project-image">{{end}}
                        <div class="project-content">
                            <h3>{{.Title}}</h3>
                            <p>{{.Description}}</p>
                            {{if .Technologies}}
                            <div class="tech-tags">
                                {{range .Technologies}}<span class="tech-tag">{{.}}</span> {{end}}
                            </div>
                            {{end}}
                            <div class="project-links">
                                {{if .URL}}<a href="{{.URL}}" target="_blank" class="btn btn-outline">View Project</a>{{end}}
                                {{if .DemoLink}}<a href="{{.DemoLink}}" target="_blank" class="btn btn-primary">Live Demo</a>{{end}}
                            </div>
                        </div>
                    </div>
                    {{end}}
                </div>
            </section>
            {{end}}

            <section id="contact" class="section">
                <h2 class="section-title">Get In Touch</h2>
                <div class="contact-card">
                    <h3>Let's work together!</h3>
                    <p>I'm always open to discussing new opportunities and interesting projects.</p>
                    <div class="contact-info">
                        {{if .Email}}<p>Email: <a href="mailto:{{.Email}}">{{.Email}}</a></p>{{end}}
                        {{if .Phone}}<p>Phone: <a href="tel:{{.Phone}}">{{.Phone}}</a></p>{{end}}
                        {{if .Location}}<p>Location: {{.Location}}</p>{{end}}
                        {{if .CVURL}}<p>CV: <a href="{{.CVURL}}" target="_blank" rel="noopener noreferrer">Download CV</a></p>{{end}}
                    </div>
                    {{if .Email}}<a href="mailto:{{.Email}}" class="btn btn-primary">Send Message</a>{{end}}
                </div>
            </section>
        </div>
    </main>

    <footer class="footer">
        <div class="container">
            <p>&copy; {{.Year}} {{.Name}}. All rights reserved.</p>
            <p>Built with <span style="color: var(--primary-color);">❤️</span> using <a href="https://portfoliomaker.dev" target="_blank">Portfolio Maker</a></p>
        </div>
    </footer>

    <script>
        document.querySelectorAll('a[href^="#"]').forEach(anchor => {
            anchor.addEventListener('click', function (e) {
                e.preventDefault();
                const target = document.querySelector(this.getAttribute('href'));
                if (target) {
                    target.scrollIntoView({ behavior: 'smooth', block: 'start' });
                }
            });
        });

        const observer = new IntersectionObserver((entries) => {
            entries.forEach(entry => {
                if (entry.isIntersecting) {
                    entry.target.style.opacity = '1';
                    entry.target.style.transform = 'translateY(0)';
                }
            });
        }, { threshold: 0.1, rootMargin: '0px 0px -50px 0px' });

        document.querySelectorAll('section').forEach(section => {
            section.style.opacity = '0';
            section.style.transform = 'translateY(20px)';
            section.style.transition = 'opacity 0.6s ease, transform 0.6s ease';
            observer.observe(section);
        });

        document.querySelector('.hero').style.opacity = '1';
        document.querySelector('.hero').style.transform = 'translateY(0)';
    </script>
    <script>
        const themeToggle = document.getElementById('theme-toggle');
        const html = document.documentElement;

        if (themeToggle) {
            html.classList.remove('dark-mode');

            themeToggle.addEventListener('click', function() {
                html.classList.toggle('dark-mode');
                localStorage.setItem('dark-mode', html.classList.contains('dark-mode'));
            });

            if (localStorage.getItem('dark-mode') === 'true') {
                html.classList.add('dark-mode');
            } else {
                html.classList.remove('dark-mode');
            }
        }
    </script>
</body>
</html>`
