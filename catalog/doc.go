// Package catalog manages named collections of compiled funcfmt templates.
//
// A Catalog pairs one formatter table with any number of templates, keeps
// every template compiled, and renders by name. Templates can be added in
// code or loaded from TOML and YAML files, and a catalog can watch its file
// for changes and reload live.
//
// # File Format
//
// Catalog files hold a table of definitions keyed by template name. TOML:
//
//	[templates.greeting]
//	template = "Hello, {name}!"
//	description = "salutation line"
//
//	[templates.farewell]
//	template = "Bye, {name}."
//
// The same shape in YAML:
//
//	templates:
//	  greeting:
//	    template: "Hello, {name}!"
//	    description: salutation line
//
// FileSchema returns a JSON Schema for this layout.
//
// # Usage
//
//	cat := catalog.New(funcfmt.FormatMap[User]{
//		"name": func(u *User) (string, error) { return u.Name, nil },
//	})
//	if err := cat.LoadFile("templates.toml"); err != nil {
//		...
//	}
//	out, err := cat.Render("greeting", &user)
//
// # Live Reload
//
// Watch re-runs LoadFile whenever the file changes and reports each
// attempt on a channel. Failed reloads keep the previous templates, so an
// editing mistake never leaves the catalog empty:
//
//	for r := range cat.Watch(ctx, "templates.toml") {
//		if r.Err != nil {
//			log.Printf("reload %s: %v", r.Path, r.Err)
//		}
//	}
//
// # Atomicity
//
// LoadFile compiles every definition before storing any of them, and the
// swap happens under the catalog's write lock. Concurrent renders see
// either the old set or the new set, never a mix.
package catalog
