package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/osteele/liquid"
)

// pitchTemplate is the fixed outreach message. Values are formatted before
// binding; the template itself only capitalizes and branches on the optional
// rate card line.
const pitchTemplate = `Hi {{ brand_name }},

I'm {{ display_name }}, a {{ niche | capitalize }} creator on {{ platform | capitalize }} with {{ followers }} followers and an average engagement rate of {{ engagement_rate }}%.

I'd love to explore a partnership. My standard sponsored-post rate is {{ min_rate }}-{{ max_rate }}, and I'm happy to tailor a package to your campaign goals.
{% if has_rate_card %}
You can view my full rate card here: {{ rate_card_url }}
{% endif %}
Best,
{{ display_name }}`

// PitchComposer renders pitch emails from a creator profile and a computed
// rate range. Safe for concurrent use; the parsed template is shared.
type PitchComposer struct {
	engine   *liquid.Engine
	template *liquid.Template
}

// NewPitchComposer builds the composer, registering the template filters and
// parsing the fixed template once.
func NewPitchComposer() (*PitchComposer, error) {
	eng := liquid.NewEngine()

	eng.RegisterFilter("capitalize", func(s string) string {
		if s == "" {
			return s
		}
		return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
	})

	tpl, err := eng.ParseString(pitchTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse pitch template: %w", err)
	}
	return &PitchComposer{engine: eng, template: tpl}, nil
}

// Compose renders the outreach message. Required fields are validated up
// front; a missing one returns ErrMissingTemplateField rather than a message
// with empty placeholders.
func (c *PitchComposer) Compose(req PitchRequest) (string, error) {
	if err := validatePitchRequest(req); err != nil {
		return "", err
	}

	brand := req.BrandName
	if brand == "" {
		brand = "there"
	}

	bindings := map[string]interface{}{
		"brand_name":      brand,
		"display_name":    req.DisplayName,
		"platform":        req.Platform,
		"niche":           req.Niche,
		"followers":       FormatFollowerCount(req.Followers),
		"engagement_rate": formatPercent(req.EngagementRatePercent),
		"min_rate":        FormatMoney(req.Rates.MinRate),
		"max_rate":        FormatMoney(req.Rates.MaxRate),
		"has_rate_card":   req.RateCardURL != "",
		"rate_card_url":   req.RateCardURL,
	}

	out, err := c.template.RenderString(bindings)
	if err != nil {
		return "", fmt.Errorf("render pitch template: %w", err)
	}
	return out, nil
}

func validatePitchRequest(req PitchRequest) error {
	switch {
	case req.DisplayName == "":
		return fmt.Errorf("%w: display_name", ErrMissingTemplateField)
	case req.Platform == "":
		return fmt.Errorf("%w: platform", ErrMissingTemplateField)
	case req.Niche == "":
		return fmt.Errorf("%w: niche", ErrMissingTemplateField)
	case req.Followers <= 0:
		return fmt.Errorf("%w: followers", ErrMissingTemplateField)
	case req.EngagementRatePercent < 0:
		return fmt.Errorf("%w: engagement_rate_percent", ErrMissingTemplateField)
	case req.Rates.MaxRate <= 0:
		return fmt.Errorf("%w: rates", ErrMissingTemplateField)
	}
	return nil
}

// FormatFollowerCount abbreviates a follower count the way the product
// displays it: 1,500,000 -> "1.5M", 50,000 -> "50.0K", 999 -> "999".
func FormatFollowerCount(n int64) string {
	switch {
	case n >= 1000000:
		return fmt.Sprintf("%.1fM", float64(n)/1000000)
	case n >= 1000:
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	default:
		return strconv.FormatInt(n, 10)
	}
}

// FormatMoney renders a whole-unit amount with a currency symbol and
// thousands separators.
func FormatMoney(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	digits := strconv.FormatInt(n, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteRune(',')
		}
		b.WriteRune(d)
	}
	if neg {
		return "-$" + b.String()
	}
	return "$" + b.String()
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
