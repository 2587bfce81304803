package view

// StyleCSS is the stylesheet for the viewer page. The core only writes
// structured nodes; everything visual lives here.
const StyleCSS = `:root {
  --bg: #ffffff;
  --bg-sidebar: #f1f3f5;
  --text: #212529;
  --text-muted: #868e96;
  --border: #dee2e6;
  --accent: #228be6;
  --accent-light: #e7f5ff;
  --code-bg: #f1f3f5;
  --table-stripe: #f8f9fa;
  --sidebar-width: 300px;
}

@media (prefers-color-scheme: dark) {
  :root {
    --bg: #1a1b26;
    --bg-sidebar: #16171f;
    --text: #c0caf5;
    --text-muted: #565f89;
    --border: #292e42;
    --accent: #7aa2f7;
    --accent-light: #1a1b2e;
    --code-bg: #1f2030;
    --table-stripe: #1f2030;
  }
}

* { box-sizing: border-box; margin: 0; padding: 0; }

body {
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  background: var(--bg);
  color: var(--text);
  line-height: 1.5;
}

.page-header { padding: 1rem 1.5rem; border-bottom: 1px solid var(--border); }
.page-header h1 { font-size: 1.25rem; }
.dataset-summary { color: var(--text-muted); font-size: .875rem; }

.indicator { padding: 1.5rem; color: var(--text-muted); }
.indicator.error { color: #e03131; }

.layout { display: flex; min-height: calc(100vh - 4rem); }

.sidebar {
  width: var(--sidebar-width);
  flex-shrink: 0;
  background: var(--bg-sidebar);
  border-right: 1px solid var(--border);
  padding: 1rem 0;
  overflow-y: auto;
}
.group { margin-bottom: 1rem; }
.group-label {
  padding: .25rem 1rem;
  font-size: .75rem;
  text-transform: uppercase;
  letter-spacing: .04em;
  color: var(--text-muted);
}
.group-variables { list-style: none; }
.variable {
  display: block;
  padding: .375rem 1rem;
  text-decoration: none;
  color: var(--text);
  border-left: 3px solid transparent;
}
.variable:hover { background: var(--accent-light); }
.variable.active {
  background: var(--accent-light);
  border-left-color: var(--accent);
  font-weight: 600;
}
.variable-name { display: block; font-size: .875rem; }
.variable-class { display: block; font-size: .75rem; color: var(--text-muted); }

.content { flex: 1; padding: 1.5rem; max-width: 900px; }
.detail h2 { margin-bottom: .5rem; }
.badges { display: flex; gap: .5rem; margin-bottom: .75rem; flex-wrap: wrap; }
.badge {
  font-size: .8125rem;
  padding: .125rem .5rem;
  border: 1px solid var(--border);
  border-radius: 4px;
  background: var(--bg-sidebar);
}
.local-definition { color: var(--text-muted); margin-bottom: 1rem; }

.detail section { margin-top: 1.5rem; }
.detail h3 { font-size: .9375rem; margin-bottom: .5rem; }

.schema-steps { list-style: none; }
.schema-step {
  padding: .5rem .75rem;
  border-left: 2px solid var(--accent);
  margin-bottom: .375rem;
  background: var(--table-stripe);
}
.step-label { font-weight: 600; font-size: .875rem; }
.step-tag {
  margin-left: .5rem;
  font-size: .75rem;
  padding: .0625rem .375rem;
  border-radius: 3px;
  background: var(--accent-light);
  color: var(--accent);
}
.step-predicate { font-size: .8125rem; color: var(--text-muted); }

.terms { width: 100%; border-collapse: collapse; font-size: .875rem; }
.terms th, .terms td {
  text-align: left;
  padding: .375rem .625rem;
  border-bottom: 1px solid var(--border);
}
.terms tr:nth-child(even) { background: var(--table-stripe); }
.terms code {
  background: var(--code-bg);
  padding: .0625rem .25rem;
  border-radius: 3px;
  font-size: .8125rem;
}
`
