package icon

import (
	"html/template"

	"github.com/nguyentantai21042004/slide-flow/internal/slide"
)

var svgs = map[slide.Icon]string{
	slide.IconEnvironment: `<svg viewBox="0 0 100 100" xmlns="http://www.w3.org/2000/svg">
<circle cx="50" cy="50" r="35" fill="#4A90E2" stroke="#2E5C8A" stroke-width="2"/>
<path d="M30 45 Q35 35, 45 40 Q55 30, 65 45 Q70 35, 75 45" fill="none" stroke="#FFF" stroke-width="2"/>
<path d="M25 55 Q35 50, 45 55 Q55 45, 70 55" fill="none" stroke="#FFF" stroke-width="2"/>
<circle cx="50" cy="25" r="8" fill="#FFD700" stroke="#FFA500" stroke-width="1"/>
</svg>`,
	slide.IconTechnology: `<svg viewBox="0 0 100 100" xmlns="http://www.w3.org/2000/svg">
<rect x="20" y="35" width="60" height="40" rx="4" fill="#4A90E2" stroke="#2E5C8A" stroke-width="2"/>
<rect x="25" y="40" width="50" height="25" fill="#FFF"/>
<circle cx="50" cy="80" r="3" fill="#4A90E2"/>
<rect x="40" y="82" width="20" height="8" fill="#2E5C8A"/>
</svg>`,
	slide.IconBusiness: `<svg viewBox="0 0 100 100" xmlns="http://www.w3.org/2000/svg">
<rect x="25" y="30" width="50" height="60" rx="4" fill="#4A90E2" stroke="#2E5C8A" stroke-width="2"/>
<rect x="30" y="45" width="40" height="3" fill="#FFF"/>
<rect x="30" y="52" width="40" height="3" fill="#FFF"/>
<rect x="30" y="59" width="25" height="3" fill="#FFF"/>
<circle cx="50" cy="20" r="8" fill="#FFD700" stroke="#FFA500" stroke-width="1"/>
</svg>`,
	slide.IconHealth: `<svg viewBox="0 0 100 100" xmlns="http://www.w3.org/2000/svg">
<circle cx="50" cy="50" r="30" fill="#E74C3C" stroke="#C0392B" stroke-width="2"/>
<rect x="40" y="30" width="20" height="40" fill="#FFF"/>
<rect x="30" y="40" width="40" height="20" fill="#FFF"/>
</svg>`,
	slide.IconEducation: `<svg viewBox="0 0 100 100" xmlns="http://www.w3.org/2000/svg">
<rect x="20" y="40" width="60" height="40" rx="4" fill="#4A90E2" stroke="#2E5C8A" stroke-width="2"/>
<polygon points="50,20 70,35 30,35" fill="#FFD700" stroke="#FFA500" stroke-width="1"/>
<rect x="25" y="50" width="50" height="3" fill="#FFF"/>
<rect x="25" y="57" width="40" height="3" fill="#FFF"/>
<rect x="25" y="64" width="35" height="3" fill="#FFF"/>
</svg>`,
	slide.IconFinance: `<svg viewBox="0 0 100 100" xmlns="http://www.w3.org/2000/svg">
<circle cx="50" cy="50" r="30" fill="#27AE60" stroke="#1E8449" stroke-width="2"/>
<text x="50" y="60" text-anchor="middle" font-family="Arial, sans-serif" font-size="24" font-weight="bold" fill="#FFF">$</text>
</svg>`,
	slide.IconGeneric: `<svg viewBox="0 0 100 100" xmlns="http://www.w3.org/2000/svg">
<rect x="25" y="25" width="50" height="50" rx="8" fill="#4A90E2" stroke="#2E5C8A" stroke-width="2"/>
<circle cx="40" cy="40" r="4" fill="#FFF"/>
<rect x="25" y="60" width="50" height="3" fill="#FFF"/>
<rect x="25" y="67" width="35" height="3" fill="#FFF"/>
</svg>`,
}

// SVG returns the markup for tag, or "" for slide.IconNone and unknown tags.
func SVG(tag slide.Icon) template.HTML {
	return template.HTML(svgs[tag])
}
