package actions

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/bryanq/doorman/internal/entities"
)

var pageUnitResponses = []string{
	"please wait. paging unit $unit",
	"ok. paging unit $unit",
	"hang on while i page unit $unit",
	"you got it. paging unit $unit",
}

var pageTenantResponses = []string{
	"ok, paging $tenant",
	"ok, please stand by while i page $tenant",
	"sure, please wait while i page $tenant",
	"paging $tenant, please stand by",
	"ok, hang on while i page $tenant",
}

// PageUnit announces a page for a building unit.
type PageUnit struct {
	say       Say
	unit      entities.Unit
	responses []string
	exception *entities.PagingException
}

func NewPageUnit(say Say, unit entities.Unit) *PageUnit {
	a := &PageUnit{
		say:       say,
		unit:      unit,
		responses: pageUnitResponses,
		exception: unit.PagingException(),
	}

	// An exception without messages keeps the default templates.
	if a.exception != nil {
		if msgs := a.exception.Messages(); len(msgs) > 0 {
			a.responses = msgs
		}
	}

	return a
}

func (a *PageUnit) Run(utterance string) error {
	response := pickResponse(a.responses)
	a.say(strings.ReplaceAll(response, "$unit", SpokenUnitNumber(a.unit.Address())))

	if a.exception != nil {
		return a.exception.Run()
	}

	// TODO: trigger the intercom paging relay for the unit once the
	// hardware is hooked up.
	return nil
}

var (
	digitRunRegex      = regexp.MustCompile(`\d+`)
	addressSuffixRegex = regexp.MustCompile(`^([0-9]+)([a-zA-Z]+)`)
)

// SpokenUnitNumber formats a unit address the way it is said in English:
// "453" is pronounced "four fifty-three" rather than
// "four hundred fifty-three", so it becomes "4 53" for the TTS engine.
// A trailing letter is kept as a separate word ("453A" -> "4 53 A").
// Anything that cannot be parsed is returned unchanged.
func SpokenUnitNumber(address string) string {
	digits := digitRunRegex.FindString(address)
	if digits == "" {
		return address
	}

	value, err := strconv.Atoi(digits)
	if err != nil {
		return address
	}

	suffix := ""
	if m := addressSuffixRegex.FindStringSubmatch(address); m != nil {
		suffix = m[2]
	}

	hundreds := value / 100
	remainder := value - hundreds*100

	return fmt.Sprintf("%d %d %s", hundreds, remainder, suffix)
}

// PageTenant announces a page for a resident.
type PageTenant struct {
	say       Say
	tenant    entities.Tenant
	responses []string
	exception *entities.PagingException
}

func NewPageTenant(say Say, tenant entities.Tenant) *PageTenant {
	a := &PageTenant{
		say:       say,
		tenant:    tenant,
		responses: pageTenantResponses,
		exception: tenant.PagingException(),
	}

	// An exception without messages keeps the default templates.
	if a.exception != nil {
		if msgs := a.exception.Messages(); len(msgs) > 0 {
			a.responses = msgs
		}
	}

	return a
}

func (a *PageTenant) Run(utterance string) error {
	response := pickResponse(a.responses)
	a.say(strings.ReplaceAll(response, "$tenant", a.tenant.Name()))

	if a.exception != nil {
		return a.exception.Run()
	}

	// TODO: trigger the intercom paging relay for the tenant once the
	// hardware is hooked up.
	return nil
}
