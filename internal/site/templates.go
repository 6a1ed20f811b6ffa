package site

// pageTemplate renders the whole marketing page. The root class, the
// --color-scheme property and the theme-color meta carry the resolved theme.
const pageTemplate = `<!DOCTYPE html>
<html lang="en" class="{{.Scope.RootClass}}" style="--color-scheme: {{.Scope.ColorScheme}}" data-theme-preference="{{.Theme.Preference}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <meta name="theme-color" content="{{.Scope.ThemeColor}}">
  <meta name="color-scheme" content="light dark">
  <title>{{.Title}}</title>
  <link rel="preconnect" href="https://fonts.googleapis.com">
  <link rel="stylesheet" href="https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600&family=Playfair+Display:wght@600;700&display=swap">
  <link rel="stylesheet" href="{{.AssetBase}}style.css">
  <script>window.SERVIQO = {live: {{.Live}}, storageKey: {{.StorageKey}}, rotateSeconds: {{.Systems.RotateSeconds}}};</script>
  {{- if not .Live}}
  <script>` + headScript + `</script>
  {{- end}}
</head>
<body>
{{with .Header}}
  <header class="site-header" data-dark="{{.IsDark}}">
    <div class="container header-inner">
      <a class="brand" href="#top">{{.Name}}</a>
      <nav class="system-tabs" aria-label="Systems">
        {{- range .Tabs}}
        <button type="button" class="system-tab{{if .Active}} active{{end}}" data-index="{{.Index}}">{{.Name}}</button>
        {{- end}}
      </nav>
      <div class="header-actions">
        <div class="theme-switch">
          <button type="button" id="theme-toggle" class="btn-secondary" data-preference="{{.Theme.Preference}}"
            {{- range .Toggles}}{{if .Current}} aria-label="Current theme: {{.Label}}. Click to cycle themes." title="Switch theme (currently {{.Label}})"{{end}}{{end}}>
            <svg class="icon icon-light" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" aria-hidden="true"><circle cx="12" cy="12" r="5"/><path d="M12 1v2M12 21v2M4.22 4.22l1.42 1.42M18.36 18.36l1.42 1.42M1 12h2M21 12h2M4.22 19.78l1.42-1.42M18.36 5.64l1.42-1.42"/></svg>
            <svg class="icon icon-dark" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" aria-hidden="true"><path d="M21 12.79A9 9 0 1 1 11.21 3 7 7 0 0 0 21 12.79z"/></svg>
            <svg class="icon icon-system" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" aria-hidden="true"><rect x="2" y="3" width="20" height="14" rx="2"/><path d="M8 21h8M12 17v4"/></svg>
          </button>
          <div id="theme-status" class="sr-only" aria-live="polite" aria-atomic="true"></div>
        </div>
        <button type="button" class="btn-primary" data-open-booking>{{.CTA}}</button>
      </div>
    </div>
  </header>
{{end}}
<main id="top">
{{with .Hero}}
  <section class="hero" data-dark="{{.IsDark}}">
    <div class="container center">
      <h1 class="display">{{.Title}}</h1>
      <p class="lead">{{.Subtitle}}</p>
      <button type="button" class="btn-primary" data-open-booking>{{.CTA}} &rarr;</button>
      <div class="stats">
        {{- range .Stats}}
        <div class="stat reveal"><div class="stat-value">{{.Value}}</div><div class="stat-label">{{.Label}}</div></div>
        {{- end}}
      </div>
    </div>
  </section>
{{end}}
{{with .Systems}}
  <section id="systems-section" class="systems" data-dark="{{.IsDark}}">
    <div class="container">
      <div class="center">
        <h2 class="display">{{.Title}}</h2>
        <p class="lead">{{.Subtitle}}</p>
      </div>
      <div class="carousel" data-rotate="{{.RotateSeconds}}">
        <button type="button" class="carousel-arrow prev" aria-label="Previous system">&lsaquo;</button>
        <button type="button" class="carousel-arrow next" aria-label="Next system">&rsaquo;</button>
        {{- range .Slides}}
        <article class="system-slide{{if .Active}} active{{end}}" id="{{.Slug}}" data-index="{{.Index}}"{{if not .Active}} hidden{{end}}>
          <div class="slide-bar slide-bar-{{.Index}}"></div>
          <div class="slide-body">
            <div class="slide-head">
              <div>
                <h3>{{.Title}}</h3>
                <p class="muted">{{.Subtitle}}</p>
              </div>
              <a class="brochure" href="{{.Brochure}}" target="_blank" rel="noopener noreferrer" title="Download {{.Title}} PDF">PDF</a>
            </div>
            <div class="slide-grid">
              <div><h4>What It Does</h4><ul>{{range .Features}}<li>{{.}}</li>{{end}}</ul></div>
              <div><h4>Proven Results</h4><ul>{{range .Results}}<li>{{.}}</li>{{end}}</ul></div>
              <div><h4>Professional Services Advantage</h4><ul>{{range .Advantages}}<li>{{.}}</li>{{end}}</ul></div>
            </div>
          </div>
        </article>
        {{- end}}
        <div class="carousel-dots">
          {{- range .Slides}}
          <button type="button" class="carousel-dot{{if .Active}} active{{end}}" data-index="{{.Index}}" aria-label="Go to {{.Name}}"></button>
          {{- end}}
        </div>
      </div>
    </div>
  </section>
{{end}}
{{with .Services}}
  <section id="adhoc-services-section" class="services" data-dark="{{.IsDark}}">
    <div class="container">
      <div class="center">
        <h2 class="display">{{.Title}}</h2>
        <p class="lead">{{.Subtitle}}</p>
      </div>
      <div class="tier-grid">
        {{- range .Tiers}}
        <div class="tier reveal">
          {{if .Image}}<img class="tier-image" src="{{.Image}}" alt="{{.Title}}" loading="lazy">{{end}}
          <h3>{{.Title}}</h3>
          <p>{{.Description}}</p>
          <h4>Key Services:</h4>
          <ul>{{range .Services}}<li>{{.}}</li>{{end}}</ul>
          <button type="button" class="btn-primary" data-open-booking>Explore Workflows</button>
        </div>
        {{- end}}
      </div>
      {{- if .Ticker}}
      <div class="ticker" aria-hidden="true"><div class="ticker-track">{{range .Ticker}}<span>{{.}}</span>{{end}}{{range .Ticker}}<span>{{.}}</span>{{end}}</div></div>
      {{- end}}
    </div>
  </section>
{{end}}
{{with .WhyChoose}}
  <section class="why" data-dark="{{.IsDark}}">
    <div class="container">
      <h2 class="display center">{{.Title}}</h2>
      <div class="card-grid">
        {{- range .Reasons}}
        <div class="card reveal"><h3>{{.Title}}</h3><p>{{.Description}}</p></div>
        {{- end}}
      </div>
    </div>
  </section>
{{end}}
{{with .Implementation}}
  <section class="implementation" data-dark="{{.IsDark}}">
    <div class="container">
      <h2 class="display center">{{.Title}}</h2>
      <div class="phase-grid">
        {{- range .Phases}}
        <div class="card reveal"><div class="phase-duration">{{.Duration}}</div><h3>{{.Name}}</h3><p>{{.Description}}</p></div>
        {{- end}}
      </div>
      {{- if .Metrics}}
      <ul class="metrics">{{range .Metrics}}<li>{{.}}</li>{{end}}</ul>
      {{- end}}
    </div>
  </section>
{{end}}
{{with .CaseStudies}}
  <section id="case-studies" class="case-studies" data-dark="{{.IsDark}}">
    <div class="container">
      <h2 class="display center">{{.Title}}</h2>
      <div class="card-grid">
        {{- range .Items}}
        <article class="card reveal">
          <div class="muted">{{.Company}}</div>
          <h3>{{.Title}}</h3>
          <div class="result">{{.Result}}</div>
          <div class="prose">{{.DescriptionHTML}}</div>
          {{if .Link}}<a class="source" href="{{.Link}}" target="_blank" rel="noopener noreferrer">{{.Source}} &nearr;</a>{{end}}
        </article>
        {{- end}}
      </div>
    </div>
  </section>
{{end}}
{{with .FAQ}}
  <section id="faq-section" class="faq" data-dark="{{.IsDark}}">
    <div class="container">
      <div class="center">
        <h2 class="display">{{.Title}}</h2>
        <p class="lead">{{.Subtitle}}</p>
      </div>
      <div class="faq-tabs" role="tablist">
        {{- range .Categories}}
        <button type="button" role="tab" class="faq-tab{{if .Active}} active{{end}}" data-category="{{.ID}}" aria-selected="{{.Active}}">{{.Name}}</button>
        {{- end}}
      </div>
      {{- range .Categories}}
      <div class="faq-panel" data-category="{{.ID}}"{{if not .Active}} hidden{{end}}>
        {{- range .Items}}
        <div class="faq-item" id="{{.ID}}">
          <button type="button" class="faq-question" aria-expanded="false" aria-controls="{{.ID}}-answer">{{.Question}}</button>
          <div class="faq-answer prose" id="{{.ID}}-answer" hidden>{{.AnswerHTML}}</div>
        </div>
        {{- end}}
      </div>
      {{- end}}
    </div>
  </section>
{{end}}
{{with .FinalCTA}}
  <section class="final-cta" data-dark="{{.IsDark}}">
    <div class="container narrow center">
      <h2 class="display">{{.Title}}</h2>
      <p class="lead">{{.Body}}</p>
      <p>{{.Lead}}</p>
      <button type="button" class="btn-primary" data-open-booking>{{.Button}} &rarr;</button>
      <p class="small">{{.Note}}</p>
    </div>
  </section>
{{end}}
</main>
{{with .Footer}}
  <footer id="footer-section" class="site-footer" data-dark="{{.IsDark}}">
    <div class="container">
      <div class="footer-grid">
        <div>
          <div class="brand">{{.Name}}</div>
          <p class="muted">{{.Tagline}}</p>
          {{if .Contact.Phone}}<p><a href="tel:{{.Contact.Phone}}">{{.Contact.Phone}}</a></p>{{end}}
          {{if .Contact.Email}}<p><a href="mailto:{{.Contact.Email}}">{{.Contact.Email}}</a></p>{{end}}
        </div>
        {{- range .Columns}}
        <div><h4>{{.Title}}</h4><ul>{{range .Links}}<li>{{.}}</li>{{end}}</ul></div>
        {{- end}}
      </div>
      {{- if .Badges}}
      <ul class="badges">{{range .Badges}}<li>{{.}}</li>{{end}}</ul>
      {{- end}}
      {{- if .Live}}
      <form id="newsletter" class="newsletter">
        <h4>{{.Newsletter.Title}}</h4>
        <input type="email" name="email" required placeholder="{{.Newsletter.Placeholder}}" aria-label="{{.Newsletter.Placeholder}}">
        <button type="submit" class="btn-primary">{{.Newsletter.Button}}</button>
        <p class="newsletter-status small" aria-live="polite"></p>
      </form>
      {{- end}}
      <div class="footer-bottom small">
        <span>&copy; {{.Year}} {{.Name}}</span>
        {{- range .Disclaimers}}<span>{{.}}</span>{{end}}
      </div>
    </div>
  </footer>
{{end}}
{{with .BookingModal}}
  <div id="booking-modal" class="modal" data-dark="{{.IsDark}}" role="dialog" aria-modal="true" aria-labelledby="booking-title" hidden>
    <div class="modal-backdrop" data-close-booking></div>
    <div class="modal-panel">
      <button type="button" class="btn-secondary modal-close" data-close-booking><span class="sr-only">Close</span>&times;</button>
      <h3 id="booking-title" class="display">{{.Title}}</h3>
      <p>{{.Body}}</p>
      <iframe class="booking-frame" data-src="{{.BookingLink}}" title="Book AI Strategy Session" loading="lazy"></iframe>
    </div>
  </div>
{{end}}
  <script src="{{.AssetBase}}script.js" defer></script>
</body>
</html>
`

// headScript resolves the theme before first paint on static pages, where
// no server saw the visitor's stored preference.
const headScript = `(function(){var c=window.SERVIQO,r=document.documentElement,p=null;try{p=localStorage.getItem(c.storageKey)}catch(e){}if(p!=="light"&&p!=="dark"&&p!=="system")p="system";var d=p==="dark"||(p==="system"&&!!window.matchMedia&&window.matchMedia("(prefers-color-scheme: dark)").matches),s=d?"dark":"light";r.classList.remove("light","dark");r.classList.add(s);r.style.setProperty("--color-scheme",s);r.setAttribute("data-theme-preference",p);var m=document.querySelector('meta[name="theme-color"]');if(m)m.setAttribute("content",d?"#111827":"#ffffff")})();`
