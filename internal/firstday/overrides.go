// Package firstday resolves the first calendar date with recorded games for
// an (expansion, event type) pair. A hand-maintained override table is
// consulted first; only pairs missing from it fall through to the cache
// store's search.
package firstday

import "time"

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

type formatKey struct {
	expansion string
	eventType string
}

// overrides maps formats to first days known from historical research.
// Authoritative and permanent: entries are never re-verified or expired.
// Regenerate with `draftstats firstday generate` after new formats settle.
var overrides = map[formatKey]time.Time{
	{"MOM", "PremierDraft"}:              day(2023, time.April, 13),
	{"MOM", "QuickDraft"}:                day(2023, time.April, 14),
	{"MOM", "TradDraft"}:                 day(2023, time.April, 18),
	{"MOM", "Sealed"}:                    day(2023, time.April, 14),
	{"MOM", "TradSealed"}:                day(2023, time.April, 18),
	{"ONE", "PremierDraft"}:              day(2023, time.February, 2),
	{"ONE", "QuickDraft"}:                day(2023, time.February, 3),
	{"ONE", "TradDraft"}:                 day(2023, time.February, 7),
	{"ONE", "Sealed"}:                    day(2023, time.February, 3),
	{"ONE", "TradSealed"}:                day(2023, time.February, 7),
	{"BRO", "PremierDraft"}:              day(2022, time.November, 15),
	{"BRO", "QuickDraft"}:                day(2022, time.November, 25),
	{"BRO", "TradDraft"}:                 day(2022, time.November, 15),
	{"BRO", "Sealed"}:                    day(2022, time.November, 15),
	{"BRO", "TradSealed"}:                day(2022, time.November, 16),
	{"DMU", "PremierDraft"}:              day(2022, time.August, 31),
	{"DMU", "QuickDraft"}:                day(2022, time.September, 16),
	{"DMU", "TradDraft"}:                 day(2022, time.September, 1),
	{"DMU", "Sealed"}:                    day(2022, time.September, 1),
	{"DMU", "TradSealed"}:                day(2022, time.September, 1),
	{"SNC", "PremierDraft"}:              day(2022, time.April, 28),
	{"SNC", "QuickDraft"}:                day(2022, time.May, 13),
	{"SNC", "TradDraft"}:                 day(2022, time.April, 28),
	{"SNC", "Sealed"}:                    day(2022, time.April, 28),
	{"SNC", "TradSealed"}:                day(2022, time.April, 28),
	{"NEO", "PremierDraft"}:              day(2022, time.February, 10),
	{"NEO", "QuickDraft"}:                day(2022, time.February, 25),
	{"NEO", "TradDraft"}:                 day(2022, time.February, 10),
	{"NEO", "Sealed"}:                    day(2022, time.February, 10),
	{"NEO", "TradSealed"}:                day(2022, time.February, 10),
	{"VOW", "PremierDraft"}:              day(2021, time.November, 11),
	{"VOW", "QuickDraft"}:                day(2021, time.November, 26),
	{"VOW", "TradDraft"}:                 day(2021, time.November, 11),
	{"VOW", "Sealed"}:                    day(2021, time.November, 11),
	{"VOW", "TradSealed"}:                day(2021, time.November, 11),
	{"MID", "PremierDraft"}:              day(2021, time.September, 16),
	{"MID", "QuickDraft"}:                day(2021, time.October, 1),
	{"MID", "TradDraft"}:                 day(2021, time.September, 16),
	{"MID", "Sealed"}:                    day(2021, time.September, 16),
	{"MID", "TradSealed"}:                day(2021, time.September, 16),
	{"SIR", "PremierDraft"}:              day(2023, time.March, 21),
	{"SIR", "TradDraft"}:                 day(2023, time.March, 21),
	{"SIR", "Sealed"}:                    day(2023, time.March, 21),
	{"SIR", "TradSealed"}:                day(2023, time.March, 21),
	{"SIR", "MidWeekSealed"}:             day(2023, time.March, 28),
	{"SIR", "OpenSealed_D1_Bo1"}:         day(2023, time.April, 1),
	{"SIR", "OpenSealed_D1_Bo3"}:         day(2023, time.April, 1),
	{"Y23ONE", "PremierDraft"}:           day(2023, time.February, 28),
	{"ONE", "MidWeekSealed"}:             day(2023, time.February, 14),
	{"ONE", "OpenSealed_D1_Bo1"}:         day(2023, time.March, 4),
	{"ONE", "OpenSealed_D1_Bo3"}:         day(2023, time.March, 4),
	{"ONE", "OpenDraft_D2_Draft1_Bo3"}:   day(2023, time.March, 5),
	{"ONE", "OpenDraft_D2_Draft2_Bo3"}:   day(2023, time.March, 5),
	{"ONE", "OpenDraft_D2_Draft2B_Bo3"}:  day(2023, time.March, 5),
	{"ONE", "QualifierPlayInSealed"}:     day(2023, time.February, 18),
	{"ONE", "QualifierPlayInTradSealed"}: day(2023, time.February, 24),
	{"ONE", "Qualifier_D1_Sealed"}:       day(2023, time.February, 25),
	{"Y23BRO", "PremierDraft"}:           day(2022, time.December, 14),
	{"BRO", "OpenSealed_D1_Bo1"}:         day(2022, time.November, 26),
	{"BRO", "OpenSealed_D1_Bo3"}:         day(2022, time.November, 26),
	{"BRO", "OpenDraft_D2_Draft1_Bo3"}:   day(2022, time.November, 27),
	{"BRO", "DecathlonTradDraft"}:        day(2023, time.January, 7),
	{"BRO", "QualifierPlayInSealed"}:     day(2022, time.December, 3),
	{"BRO", "QualifierPlayInTradSealed"}: day(2022, time.December, 9),
	{"BRO", "Qualifier_D1_Sealed"}:       day(2022, time.December, 10),
	{"Y23DMU", "PremierDraft"}:           day(2022, time.October, 6),
	{"DMU", "OpenSealed_D1_Bo1"}:         day(2022, time.October, 1),
	{"DMU", "OpenSealed_D1_Bo3"}:         day(2022, time.October, 1),
	{"DMU", "OpenDraft_D2_Draft1_Bo3"}:   day(2022, time.October, 2),
	{"DMU", "OpenDraft_D2_Draft2_Bo3"}:   day(2022, time.October, 2),
	{"DMU", "QualifierPlayInSealed"}:     day(2022, time.September, 10),
	{"DMU", "QualifierPlayInTradSealed"}: day(2022, time.September, 16),
	{"DMU", "Qualifier_D1_Sealed"}:       day(2022, time.September, 17),
	{"HBG", "PremierDraft"}:              day(2022, time.July, 7),
	{"HBG", "TradDraft"}:                 day(2022, time.July, 7),
	{"HBG", "QuickDraft"}:                day(2022, time.July, 22),
	{"HBG", "Sealed"}:                    day(2022, time.July, 7),
	{"HBG", "TradSealed"}:                day(2022, time.July, 7),
	{"HBG", "OpenSealed_D1_Bo1"}:         day(2022, time.July, 30),
	{"HBG", "OpenSealed_D1_Bo3"}:         day(2022, time.July, 30),
	{"HBG", "OpenDraft_D2_Draft1_Bo3"}:   day(2022, time.July, 31),
	{"HBG", "OpenDraft_D2_Draft2_Bo3"}:   day(2022, time.July, 31),
	{"HBG", "QualifierPlayInSealed"}:     day(2022, time.July, 16),
	{"HBG", "Qualifier_D1_Sealed"}:       day(2022, time.July, 23),
	{"HBG", "Qualifier_D2_Draft"}:        day(2022, time.July, 24),
	{"Y22SNC", "PremierDraft"}:           day(2022, time.June, 2),
	{"SNC", "OpenSealed_D1_Bo1"}:         day(2022, time.May, 14),
	{"SNC", "OpenSealed_D1_Bo3"}:         day(2022, time.May, 14),
	{"SNC", "OpenDraft_D2_Bo3"}:          day(2022, time.May, 15),
	{"SNC", "QualifierPlayInSealed"}:     day(2022, time.May, 22),
	{"SNC", "QualifierPlayInTradSealed"}: day(2022, time.May, 28),
	{"SNC", "Qualifier_D1_Sealed"}:       day(2022, time.May, 28),
	{"SNC", "Qualifier_D2_Draft"}:        day(2022, time.May, 29),
	{"NEO", "OpenSealed_D1_Bo1"}:         day(2022, time.February, 26),
	{"NEO", "OpenSealed_D1_Bo3"}:         day(2022, time.February, 26),
	{"NEO", "OpenDraft_D2_Bo3"}:          day(2022, time.February, 27),
	{"NEO", "DecathlonQuickDraft"}:       day(2023, time.January, 10),
	{"DBL", "PremierDraft"}:              day(2022, time.January, 28),
	{"VOW", "OpenDraft_D1_Bo1"}:          day(2021, time.December, 4),
	{"VOW", "OpenDraft_D1_Bo3"}:          day(2021, time.December, 4),
	{"VOW", "OpenDraft_D2_Bo3"}:          day(2021, time.December, 5),
	{"VOW", "EsportsQualifierDraft_D1"}:  day(2021, time.December, 18),
	{"VOW", "EsportsQualifierDraft_D2"}:  day(2021, time.December, 19),
	{"RAVM", "PremierDraft"}:             day(2021, time.October, 29),
	{"RAVM", "Sealed"}:                   day(2022, time.April, 8),
	{"MID", "DraftChallenge"}:            day(2021, time.October, 22),
	{"AFR", "PremierDraft"}:              day(2021, time.July, 15),
	{"AFR", "TradDraft"}:                 day(2021, time.July, 15),
	{"AFR", "QuickDraft"}:                day(2021, time.July, 23),
	{"AFR", "Sealed"}:                    day(2021, time.July, 15),
	{"AFR", "TradSealed"}:                day(2021, time.July, 15),
	{"AFR", "DraftChallenge"}:            day(2021, time.August, 7),
	{"STX", "PremierDraft"}:              day(2021, time.April, 15),
	{"STX", "TradDraft"}:                 day(2021, time.April, 15),
	{"STX", "QuickDraft"}:                day(2021, time.April, 30),
	{"STX", "Sealed"}:                    day(2021, time.April, 15),
	{"STX", "TradSealed"}:                day(2021, time.April, 15),
	{"STX", "MidWeekQuickDraft"}:         day(2023, time.March, 14),
	{"STX", "DraftChallenge"}:            day(2021, time.May, 22),
	{"STX", "OpenSealed_D1_Bo1"}:         day(2021, time.May, 8),
	{"STX", "OpenSealed_D1_Bo3"}:         day(2021, time.May, 8),
	{"STX", "OpenSealed_D2_Bo3"}:         day(2021, time.May, 9),
	{"CORE", "PremierDraft"}:             day(2021, time.March, 26),
	{"KHM", "PremierDraft"}:              day(2021, time.January, 27),
	{"KHM", "TradDraft"}:                 day(2021, time.January, 28),
	{"KHM", "QuickDraft"}:                day(2021, time.February, 12),
	{"KHM", "Sealed"}:                    day(2021, time.January, 28),
	{"KHM", "TradSealed"}:                day(2021, time.February, 12),
	{"KHM", "MidWeekQuickDraft"}:         day(2023, time.January, 17),
	{"KHM", "OpenSealed_D1_Bo1"}:         day(2021, time.February, 20),
	{"KHM", "OpenSealed_D1_Bo3"}:         day(2021, time.February, 20),
	{"KHM", "OpenSealed_D2_Bo3"}:         day(2021, time.February, 21),
	{"KHM", "OpenDraft_D2_Draft1_Bo3"}:   day(2023, time.January, 22),
	{"KHM", "OpenDraft_D2_Draft2B_Bo3"}:  day(2023, time.January, 22),
	{"KLR", "PremierDraft"}:              day(2020, time.November, 12),
	{"KLR", "TradDraft"}:                 day(2020, time.November, 12),
	{"KLR", "Sealed"}:                    day(2020, time.November, 12),
	{"KLR", "DraftChallenge"}:            day(2020, time.November, 28),
	{"ZNR", "PremierDraft"}:              day(2020, time.September, 16),
	{"ZNR", "TradDraft"}:                 day(2020, time.September, 17),
	{"ZNR", "QuickDraft"}:                day(2020, time.October, 2),
	{"ZNR", "Sealed"}:                    day(2020, time.September, 17),
	{"AKR", "PremierDraft"}:              day(2020, time.August, 13),
	{"AKR", "Sealed"}:                    day(2020, time.August, 13),
	{"M21", "PremierDraft"}:              day(2020, time.June, 24),
	{"M21", "TradDraft"}:                 day(2020, time.June, 25),
	{"M21", "QuickDraft"}:                day(2020, time.July, 10),
	{"M21", "Sealed"}:                    day(2020, time.June, 25),
	{"IKO", "PremierDraft"}:              day(2020, time.April, 19),
	{"IKO", "TradDraft"}:                 day(2020, time.April, 16),
	{"IKO", "QuickDraft"}:                day(2020, time.May, 5),
	{"IKO", "Sealed"}:                    day(2020, time.April, 17),
	{"Cube", "PremierDraft"}:             day(2020, time.December, 13),
	{"Cube", "TradDraft"}:                day(2020, time.December, 13),
	{"Cube", "CubeDraft"}:                day(2020, time.June, 12),
	{"Cube", "CubeSealed"}:               day(2020, time.April, 5),
	{"Cube", "OpenDraft_D1_Bo1"}:         day(2022, time.December, 17),
	{"Cube", "OpenDraft_D1_Bo3"}:         day(2022, time.December, 17),
	{"Cube", "OpenDraft_D2_Draft1_Bo3"}:  day(2022, time.December, 18),
	{"Cube", "OpenDraft_D2_Draft2B_Bo3"}: day(2022, time.December, 18),
	{"THB", "PremierDraft"}:              day(2020, time.October, 30),
	{"THB", "QuickDraft"}:                day(2020, time.February, 4),
	{"THB", "Sealed"}:                    day(2020, time.January, 16),
	{"THB", "CompDraft"}:                 day(2020, time.January, 20),
	{"ELD", "PremierDraft"}:              day(2020, time.July, 24),
	{"ELD", "QuickDraft"}:                day(2019, time.December, 23),
	{"ELD", "CompDraft"}:                 day(2019, time.December, 31),
	{"M20", "QuickDraft"}:                day(2019, time.September, 9),
	{"WAR", "PremierDraft"}:              day(2021, time.March, 12),
	{"WAR", "QuickDraft"}:                day(2019, time.July, 18),
	{"M19", "QuickDraft"}:                day(2020, time.March, 29),
	{"DOM", "PremierDraft"}:              day(2020, time.July, 31),
	{"DOM", "QuickDraft"}:                day(2020, time.January, 3),
	{"DOM", "Sealed"}:                    day(2022, time.October, 28),
	{"DOM", "TradSealed"}:                day(2022, time.November, 5),
	{"DOM", "OpenSealed_D1_Bo1"}:         day(2022, time.November, 5),
	{"DOM", "OpenSealed_D1_Bo3"}:         day(2022, time.November, 5),
	{"DOM", "OpenSealed_D2_Sealed1_Bo3"}: day(2022, time.November, 6),
	{"DOM", "OpenSealed_D2_Sealed2_Bo3"}: day(2022, time.November, 6),
	{"RIX", "QuickDraft"}:                day(2020, time.June, 12),
	{"GRN", "PremierDraft"}:              day(2021, time.January, 1),
	{"GRN", "QuickDraft"}:                day(2019, time.September, 10),
	{"RNA", "PremierDraft"}:              day(2021, time.January, 8),
	{"RNA", "QuickDraft"}:                day(2020, time.March, 14),
}
