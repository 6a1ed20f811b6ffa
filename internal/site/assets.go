package site

// cssContent is the page stylesheet. The palette follows the root light/dark
// class set by the theme resolver.
const cssContent = `/* ============ CSS Variables ============ */
:root, html.light {
  --bg: #ffffff;
  --bg-elevated: #f8f9fa;
  --text: #111827;
  --text-muted: #4b5563;
  --border: #e5e7eb;
  --accent: #2563eb;
  --accent-2: #7c3aed;
  --btn-bg: #111827;
  --btn-text: #ffffff;
  --shadow: 0 4px 12px rgba(0,0,0,0.08);
}

html.dark {
  --bg: #000000;
  --bg-elevated: #111827;
  --text: #ffffff;
  --text-muted: #d1d5db;
  --border: #1f2937;
  --accent: #60a5fa;
  --accent-2: #a78bfa;
  --btn-bg: #ffffff;
  --btn-text: #000000;
  --shadow: 0 4px 16px rgba(0,0,0,0.5);
}

/* ============ Base ============ */
* { box-sizing: border-box; }
html {
  scroll-behavior: smooth;
  color-scheme: var(--color-scheme, light);
}
body {
  margin: 0;
  background: var(--bg);
  color: var(--text);
  font-family: 'Inter', 'Helvetica Neue', Helvetica, Arial, sans-serif;
  line-height: 1.6;
  transition: background-color 0.3s, color 0.3s;
}
a { color: var(--accent); }
ul { padding-left: 1.1rem; }
.container { max-width: 80rem; margin: 0 auto; padding: 0 1.5rem; }
.narrow { max-width: 56rem; }
.center { text-align: center; }
.display { font-family: 'Playfair Display', Georgia, 'Times New Roman', serif; font-weight: 700; }
.lead { font-size: 1.2rem; max-width: 48rem; margin: 0 auto 2rem; }
.muted { color: var(--text-muted); }
.small { font-size: 0.85rem; color: var(--text-muted); }
.sr-only { position: absolute; width: 1px; height: 1px; overflow: hidden; clip: rect(0,0,0,0); white-space: nowrap; }
section { padding: 4rem 0; }
h1.display { font-size: clamp(2.2rem, 5vw, 3.75rem); line-height: 1.15; margin-bottom: 2rem; }
h2.display { font-size: clamp(1.8rem, 3.5vw, 2.4rem); }

/* ============ Buttons ============ */
.btn-primary, .btn-secondary {
  display: inline-flex;
  align-items: center;
  gap: 0.5rem;
  border-radius: 9999px;
  padding: 0.75rem 1.5rem;
  font: inherit;
  font-weight: 600;
  cursor: pointer;
  transition: transform 0.2s, box-shadow 0.2s, background-color 0.3s;
}
.btn-primary { background: var(--btn-bg); color: var(--btn-text); border: none; }
.btn-primary:hover { transform: translateY(-1px); box-shadow: var(--shadow); }
.btn-secondary { background: transparent; color: var(--text); border: 1px solid var(--border); padding: 0.5rem; }

/* ============ Header ============ */
.site-header {
  position: fixed; top: 0; left: 0; right: 0; z-index: 40;
  background: color-mix(in srgb, var(--bg) 85%, transparent);
  backdrop-filter: blur(8px);
  border-bottom: 1px solid var(--border);
}
.header-inner { display: flex; align-items: center; justify-content: space-between; height: 4rem; gap: 1rem; }
.brand { font-family: 'Playfair Display', Georgia, serif; font-size: 1.5rem; font-weight: 700; color: var(--text); text-decoration: none; }
.header-actions { display: flex; align-items: center; gap: 0.75rem; }
.system-tabs { display: flex; gap: 0.25rem; background: var(--bg-elevated); border-radius: 9999px; padding: 0.25rem; }
.system-tab { border: none; background: transparent; color: var(--text); padding: 0.4rem 1rem; border-radius: 9999px; cursor: pointer; font: inherit; }
.system-tab.active { background: var(--btn-bg); color: var(--btn-text); }
#theme-toggle .icon { display: none; }
#theme-toggle[data-preference="light"] .icon-light,
#theme-toggle[data-preference="dark"] .icon-dark,
#theme-toggle[data-preference="system"] .icon-system { display: inline; }

/* ============ Hero ============ */
.hero { padding-top: 8rem; background: linear-gradient(135deg, color-mix(in srgb, var(--accent-2) 15%, transparent), transparent 60%); }
.stats { display: grid; grid-template-columns: repeat(auto-fit, minmax(12rem, 1fr)); gap: 2rem; max-width: 56rem; margin: 3rem auto 0; }
.stat-value { font-family: 'Playfair Display', Georgia, serif; font-size: 2rem; font-weight: 700; }

/* ============ Systems carousel ============ */
.carousel { position: relative; margin-top: 2rem; }
.carousel-arrow {
  position: absolute; top: 50%; transform: translateY(-50%); z-index: 2;
  border: 1px solid var(--border); background: var(--bg-elevated); color: var(--text);
  width: 2.5rem; height: 2.5rem; border-radius: 9999px; cursor: pointer; font-size: 1.4rem;
}
.carousel-arrow.prev { left: 0; }
.carousel-arrow.next { right: 0; }
.system-slide { margin: 0 3rem; background: var(--bg-elevated); border: 1px solid var(--border); border-radius: 1rem; overflow: hidden; box-shadow: var(--shadow); }
.slide-bar { height: 0.5rem; background: linear-gradient(90deg, #2563eb, #7c3aed); }
.slide-bar-1 { background: linear-gradient(90deg, #059669, #0d9488); }
.slide-bar-2 { background: linear-gradient(90deg, #ea580c, #dc2626); }
.slide-body { padding: 2rem; }
.slide-head { display: flex; justify-content: space-between; align-items: flex-start; gap: 1rem; margin-bottom: 1.5rem; }
.slide-head h3 { font-size: 1.75rem; margin: 0 0 0.5rem; }
.brochure { border: 1px solid var(--border); border-radius: 0.5rem; padding: 0.75rem 1rem; text-decoration: none; font-weight: 600; }
.slide-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(16rem, 1fr)); gap: 2rem; }
.carousel-dots { display: flex; justify-content: center; gap: 0.5rem; margin-top: 1.5rem; }
.carousel-dot { width: 0.75rem; height: 0.75rem; border-radius: 9999px; border: none; background: var(--border); cursor: pointer; }
.carousel-dot.active { background: var(--text); width: 2rem; }

/* ============ Cards ============ */
.card-grid, .tier-grid, .phase-grid { display: grid; gap: 2rem; margin-top: 2.5rem; }
.card-grid { grid-template-columns: repeat(auto-fit, minmax(20rem, 1fr)); }
.tier-grid, .phase-grid { grid-template-columns: repeat(auto-fit, minmax(16rem, 1fr)); }
.card, .tier { background: var(--bg-elevated); border: 1px solid var(--border); border-radius: 1rem; padding: 1.75rem; }
.tier-image { width: 100%; height: 12rem; object-fit: cover; border-radius: 0.75rem; }
.phase-duration { color: var(--accent); font-weight: 600; }
.result { font-weight: 600; margin: 0.5rem 0; }
.metrics { display: flex; flex-wrap: wrap; gap: 0.75rem 2rem; justify-content: center; list-style: none; padding: 0; margin-top: 2.5rem; }
.ticker { overflow: hidden; margin-top: 3rem; border-top: 1px solid var(--border); border-bottom: 1px solid var(--border); }
.ticker-track { display: inline-flex; gap: 3rem; padding: 1rem 0; white-space: nowrap; animation: scroll-left 40s linear infinite; }
@keyframes scroll-left { from { transform: translateX(0); } to { transform: translateX(-50%); } }

/* ============ FAQ ============ */
.faq-tabs { display: flex; flex-wrap: wrap; justify-content: center; gap: 0.5rem; margin-bottom: 2rem; }
.faq-tab { border: 1px solid var(--border); background: transparent; color: var(--text); padding: 0.5rem 1.1rem; border-radius: 9999px; cursor: pointer; font: inherit; }
.faq-tab.active { background: var(--btn-bg); color: var(--btn-text); }
.faq-panel { display: grid; grid-template-columns: repeat(auto-fit, minmax(22rem, 1fr)); gap: 1rem; }
.faq-item { border: 1px solid var(--border); border-radius: 0.75rem; background: var(--bg-elevated); }
.faq-question { width: 100%; text-align: left; background: none; border: none; color: var(--text); font: inherit; font-weight: 600; padding: 1rem 1.25rem; cursor: pointer; }
.faq-question[aria-expanded="true"] { color: var(--accent); }
.faq-answer { padding: 0 1.25rem 1rem; border-top: 1px solid var(--border); }
.prose p:first-child { margin-top: 0.75rem; }
.prose pre { overflow-x: auto; padding: 0.75rem; border-radius: 0.5rem; }

/* ============ Footer ============ */
.site-footer { border-top: 1px solid var(--border); padding: 4rem 0 2rem; }
.footer-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(12rem, 1fr)); gap: 2rem; }
.footer-grid ul { list-style: none; padding: 0; color: var(--text-muted); }
.badges { display: flex; flex-wrap: wrap; gap: 0.5rem; list-style: none; padding: 0; margin: 2rem 0; }
.badges li { border: 1px solid var(--border); border-radius: 9999px; padding: 0.25rem 0.75rem; font-size: 0.85rem; }
.newsletter { display: flex; flex-wrap: wrap; align-items: center; gap: 0.75rem; margin: 2rem 0; }
.newsletter h4 { width: 100%; margin: 0; }
.newsletter input { flex: 1; min-width: 14rem; padding: 0.75rem 1rem; border-radius: 0.5rem; border: 1px solid var(--border); background: var(--bg-elevated); color: var(--text); font: inherit; }
.footer-bottom { display: flex; flex-wrap: wrap; gap: 1.5rem; border-top: 1px solid var(--border); padding-top: 1.5rem; }

/* ============ Booking modal ============ */
.modal { position: fixed; inset: 0; z-index: 50; display: flex; align-items: center; justify-content: center; }
.modal[hidden] { display: none; }
.modal-backdrop { position: absolute; inset: 0; background: rgba(0,0,0,0.7); }
.modal-panel { position: relative; width: min(56rem, 94vw); background: var(--bg-elevated); border: 1px solid var(--border); border-radius: 1rem; padding: 2rem; }
.modal-close { position: absolute; top: 1rem; right: 1rem; }
.booking-frame { width: 100%; height: min(600px, 70vh); border: none; border-radius: 0.5rem; background: #fff; }

/* ============ Scroll reveal ============ */
.reveal { opacity: 0; transform: translateY(1rem); transition: opacity 0.6s, transform 0.6s; }
.reveal.in-view { opacity: 1; transform: none; }
@media (prefers-reduced-motion: reduce) {
  .reveal { opacity: 1; transform: none; transition: none; }
  .ticker-track { animation: none; }
}

@media (max-width: 768px) {
  .system-tabs { display: none; }
  .system-slide { margin: 0; }
  .carousel-arrow { display: none; }
}
`

// jsContent drives the theme switch, carousel, FAQ accordion, booking modal
// and newsletter form.
const jsContent = `(function() {
  "use strict";

  var cfg = window.SERVIQO || {};
  var root = document.documentElement;
  var mq = window.matchMedia ? window.matchMedia("(prefers-color-scheme: dark)") : null;
  var order = ["light", "dark", "system"];
  var labels = { light: "Light mode", dark: "Dark mode", system: "System preference" };
  var current = root.getAttribute("data-theme-preference") || "system";

  // ===== Theme =====
  function applyState(state) {
    var scheme = state.is_dark ? "dark" : "light";
    root.classList.remove("light", "dark");
    root.classList.add(scheme);
    root.style.setProperty("--color-scheme", scheme);
    root.setAttribute("data-theme-preference", state.preference);
    var meta = document.querySelector('meta[name="theme-color"]');
    if (meta) meta.setAttribute("content", state.theme_color || (state.is_dark ? "#111827" : "#ffffff"));
    document.querySelectorAll("[data-dark]").forEach(function(el) {
      el.setAttribute("data-dark", state.is_dark ? "true" : "false");
    });
    var changed = current !== state.preference;
    current = state.preference;
    updateToggle(changed);
  }

  function updateToggle(announce) {
    var btn = document.getElementById("theme-toggle");
    if (!btn) return;
    btn.setAttribute("data-preference", current);
    btn.setAttribute("aria-label", "Current theme: " + labels[current] + ". Click to cycle themes.");
    btn.title = "Switch theme (currently " + labels[current] + ")";
    var status = document.getElementById("theme-status");
    if (status && announce) status.textContent = "Theme changed to " + labels[current];
  }

  function prefersDark() { return !!(mq && mq.matches); }

  function onHostChange(fn) {
    if (!mq) return;
    if (mq.addEventListener) mq.addEventListener("change", fn);
    else if (mq.addListener) mq.addListener(fn);
  }

  // Browser storage backs the preference when no server is attached.
  function localResolver() {
    function load() {
      var v = null;
      try { v = localStorage.getItem(cfg.storageKey); } catch (e) {}
      return order.indexOf(v) >= 0 ? v : "system";
    }
    function resolve(p) { return p === "dark" || (p === "system" && prefersDark()); }
    function set(p) {
      applyState({ preference: p, is_dark: resolve(p) });
      try { localStorage.setItem(cfg.storageKey, p); } catch (e) {}
    }
    var initial = load();
    applyState({ preference: initial, is_dark: resolve(initial) });
    onHostChange(function() {
      if (current === "system") applyState({ preference: "system", is_dark: prefersDark() });
    });
    return { cycle: function() { set(order[(order.indexOf(current) + 1) % order.length]); } };
  }

  // The server owns the preference; host changes travel over the socket.
  function liveResolver(onFail) {
    var proto = location.protocol === "https:" ? "wss:" : "ws:";
    var ws, opened = false, pending = [];
    try { ws = new WebSocket(proto + "//" + location.host + "/ws/theme"); } catch (e) { return onFail(); }

    function send(msg) {
      if (opened && ws.readyState === 1) ws.send(JSON.stringify(msg));
      else pending.push(msg);
    }
    ws.onopen = function() {
      opened = true;
      ws.send(JSON.stringify({ type: "hello", prefers_dark: prefersDark() }));
      pending.splice(0).forEach(send);
    };
    ws.onmessage = function(ev) {
      var msg;
      try { msg = JSON.parse(ev.data); } catch (e) { return; }
      if (msg.type === "theme") applyState(msg);
    };
    ws.onclose = function() { if (!opened) onFail(); };
    onHostChange(function() { send({ type: "host", prefers_dark: prefersDark() }); });
    return { cycle: function() { send({ type: "cycle" }); } };
  }

  var resolver;
  if (cfg.live && window.WebSocket) {
    resolver = liveResolver(function() { resolver = localResolver(); return resolver; });
  } else {
    resolver = localResolver();
  }

  var toggle = document.getElementById("theme-toggle");
  if (toggle) toggle.addEventListener("click", function() { resolver.cycle(); });

  // ===== Systems carousel =====
  var slides = Array.prototype.slice.call(document.querySelectorAll(".system-slide"));
  var tabs = document.querySelectorAll(".system-tab");
  var dots = document.querySelectorAll(".carousel-dot");
  var active = 0, autoPlay = true, resumeTimer = null;

  function show(index) {
    if (!slides.length) return;
    active = (index + slides.length) % slides.length;
    slides.forEach(function(el, i) {
      el.classList.toggle("active", i === active);
      el.hidden = i !== active;
    });
    [tabs, dots].forEach(function(list) {
      Array.prototype.forEach.call(list, function(el) {
        el.classList.toggle("active", Number(el.getAttribute("data-index")) === active);
      });
    });
  }

  function pauseAutoPlay() {
    autoPlay = false;
    clearTimeout(resumeTimer);
    resumeTimer = setTimeout(function() { autoPlay = true; }, 10000);
  }

  function goTo(index) { show(index); pauseAutoPlay(); }

  Array.prototype.forEach.call(tabs, function(el) {
    el.addEventListener("click", function() {
      goTo(Number(el.getAttribute("data-index")));
      var section = document.getElementById("systems-section");
      if (section) section.scrollIntoView({ behavior: "smooth" });
    });
  });
  Array.prototype.forEach.call(dots, function(el) {
    el.addEventListener("click", function() { goTo(Number(el.getAttribute("data-index"))); });
  });
  var prev = document.querySelector(".carousel-arrow.prev");
  var next = document.querySelector(".carousel-arrow.next");
  if (prev) prev.addEventListener("click", function() { goTo(active - 1); });
  if (next) next.addEventListener("click", function() { goTo(active + 1); });

  if (slides.length > 1) {
    setInterval(function() { if (autoPlay) show(active + 1); }, (cfg.rotateSeconds || 5) * 1000);
  }

  // ===== FAQ =====
  document.querySelectorAll(".faq-tab").forEach(function(tab) {
    tab.addEventListener("click", function() {
      var id = tab.getAttribute("data-category");
      document.querySelectorAll(".faq-tab").forEach(function(t) {
        var on = t === tab;
        t.classList.toggle("active", on);
        t.setAttribute("aria-selected", on ? "true" : "false");
      });
      document.querySelectorAll(".faq-panel").forEach(function(p) {
        p.hidden = p.getAttribute("data-category") !== id;
      });
    });
  });
  document.querySelectorAll(".faq-question").forEach(function(q) {
    q.addEventListener("click", function() {
      var open = q.getAttribute("aria-expanded") === "true";
      q.setAttribute("aria-expanded", open ? "false" : "true");
      var answer = document.getElementById(q.getAttribute("aria-controls"));
      if (answer) answer.hidden = open;
    });
  });

  // ===== Booking modal =====
  var modal = document.getElementById("booking-modal");
  function openModal() {
    if (!modal) return;
    var frame = modal.querySelector(".booking-frame");
    if (frame && !frame.getAttribute("src")) frame.setAttribute("src", frame.getAttribute("data-src"));
    modal.hidden = false;
    document.body.style.overflow = "hidden";
  }
  function closeModal() {
    if (!modal) return;
    modal.hidden = true;
    document.body.style.overflow = "";
  }
  document.querySelectorAll("[data-open-booking]").forEach(function(el) { el.addEventListener("click", openModal); });
  document.querySelectorAll("[data-close-booking]").forEach(function(el) { el.addEventListener("click", closeModal); });
  document.addEventListener("keydown", function(e) { if (e.key === "Escape") closeModal(); });

  // ===== Newsletter =====
  var form = document.getElementById("newsletter");
  if (form) {
    form.addEventListener("submit", function(e) {
      e.preventDefault();
      var status = form.querySelector(".newsletter-status");
      var email = form.querySelector("input[name=email]").value;
      fetch("/api/subscribe", {
        method: "POST",
        headers: { "Content-Type": "application/json" },
        body: JSON.stringify({ email: email, source: "footer" })
      }).then(function(res) {
        return res.json().then(function(body) {
          if (!res.ok) throw new Error(body.error || "subscription failed");
          status.textContent = body.created ? "Thanks for subscribing." : "You're already on the list.";
          form.reset();
        });
      }).catch(function(err) { status.textContent = err.message; });
    });
  }

  // ===== Scroll reveal =====
  var reveal = document.querySelectorAll(".reveal");
  if ("IntersectionObserver" in window) {
    var io = new IntersectionObserver(function(entries) {
      entries.forEach(function(entry) {
        if (entry.isIntersecting) { entry.target.classList.add("in-view"); io.unobserve(entry.target); }
      });
    }, { threshold: 0.15 });
    reveal.forEach(function(el) { io.observe(el); });
  } else {
    reveal.forEach(function(el) { el.classList.add("in-view"); });
  }
})();
`
