package fixup

// Pages of the bilingual site layout the built-in rules were written for.
var sitePages = []string{
	"index.html",
	"about.html",
	"programs.html",
	"participate.html",
	"contact.html",
	"en/index.html",
	"en/about.html",
	"en/programs.html",
	"en/participate.html",
	"en/contact.html",
}

// menuIconSVG replaces the icon-font hamburger so the menu renders without
// the Font Awesome stylesheet.
const menuIconSVG = `            <div class="mobile-toggle" style="color:#fff;">
                <svg width="28" height="28" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round">
                    <line x1="3" y1="12" x2="21" y2="12"></line>
                    <line x1="3" y1="6" x2="21" y2="6"></line>
                    <line x1="3" y1="18" x2="21" y2="18"></line>
                </svg>
            </div>`

const (
	menuIconsPattern    = `<div\s+class=["']mobile-toggle["'][^>]*>\s*<i\s+class=["']fas\s+fa-bars["']>\s*</i>\s*</div>`
	stickyButtonPattern = `<!-- Sticky Volunteer Button \(Mobile\) -->\s*<a\s+[^>]*class=["'][^"']*sticky-volunteer-btn[^"']*["'][^>]*>.*?</a>`
)

// Builtins returns the rules that ship with the tool:
//
//   - menu-icons swaps the Font Awesome bars icon of the mobile menu toggle
//     for an inline SVG (the home page already has it).
//   - sticky-button removes the sticky volunteer button shown on mobile.
func Builtins() []*Rule {
	return []*Rule{
		mustRule("menu-icons", menuIconsPattern, menuIconSVG, sitePages[1:]),
		mustRule("sticky-button", stickyButtonPattern, "", sitePages),
	}
}

func mustRule(name, pattern, replacement string, files []string) *Rule {
	r, err := NewRule(name, pattern, replacement, append([]string(nil), files...))
	if err != nil {
		panic(err)
	}
	return r
}
