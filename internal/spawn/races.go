package spawn

import "stonedelve/internal/generate"

// Palette indices used by MonsterRace.Color. Renderers map these onto their
// own color types; the indices follow the classic 16-color terminal layout.
const (
	ColBlack byte = iota
	ColRed
	ColGreen
	ColYellow
	ColBlue
	ColMagenta
	ColCyan
	ColWhite
	ColGray
	ColBrightRed
	ColBrightGreen
	ColBrightYellow
	ColBrightBlue
	ColBrightMagenta
	ColBrightCyan
	ColBrightWhite
)

// raceCatalog is the built-in bestiary, ordered by depth. Every pit and nest
// theme has candidates across a band of depths, and the two quest guardians
// sit at the bottom.
var raceCatalog = []generate.MonsterRace{
	// townsfolk; level 0 keeps them out of the dungeon
	{ID: 45, Name: "scruffy dog", Base: "canine", Glyph: 'C', Color: ColYellow, Level: 0, Rarity: 1,
		Flags: generate.RFAnimal},
	{ID: 46, Name: "pickpocket", Base: "person", Glyph: 't', Color: ColGray, Level: 0, Rarity: 1},
	{ID: 47, Name: "drunken reveler", Base: "person", Glyph: 't', Color: ColMagenta, Level: 0, Rarity: 1},

	// shallow vermin and town riffraff
	{ID: 1, Name: "giant white rat", Base: "rodent", Glyph: 'r', Color: ColWhite, Level: 1, Rarity: 1,
		Flags: generate.RFAnimal | generate.RFFriends},
	{ID: 2, Name: "cave spider", Base: "spider", Glyph: 'S', Color: ColGray, Level: 2, Rarity: 1,
		Flags: generate.RFAnimal | generate.RFSpider | generate.RFFriends},
	{ID: 3, Name: "wild dog", Base: "canine", Glyph: 'C', Color: ColYellow, Level: 2, Rarity: 1,
		Flags: generate.RFAnimal | generate.RFHound | generate.RFFriends},
	{ID: 4, Name: "kobold", Base: "kobold", Glyph: 'k', Color: ColGreen, Level: 3, Rarity: 1,
		Flags: generate.RFEvil},
	{ID: 5, Name: "skeleton rat", Base: "rodent", Glyph: 's', Color: ColWhite, Level: 4, Rarity: 2,
		Flags: generate.RFUndead | generate.RFEvil | generate.RFAnimal},

	// orcish warbands
	{ID: 6, Name: "snaga", Base: "orc", Glyph: 'o', Color: ColGreen, Level: 6, Rarity: 1,
		Flags: generate.RFOrc | generate.RFEvil | generate.RFFriends},
	{ID: 7, Name: "cave orc", Base: "orc", Glyph: 'o', Color: ColGreen, Level: 8, Rarity: 1,
		Flags: generate.RFOrc | generate.RFEvil | generate.RFFriends},
	{ID: 8, Name: "orc soldier", Base: "orc", Glyph: 'o', Color: ColBrightGreen, Level: 12, Rarity: 1,
		Flags: generate.RFOrc | generate.RFEvil | generate.RFFriends},
	{ID: 9, Name: "orc captain", Base: "orc", Glyph: 'o', Color: ColBrightRed, Level: 17, Rarity: 2,
		Flags: generate.RFOrc | generate.RFEvil},
	{ID: 10, Name: "orc shaman", Base: "orc", Glyph: 'o', Color: ColBrightBlue, Level: 14, Rarity: 2,
		Flags: generate.RFOrc | generate.RFEvil, Spells: generate.RSCauseWounds},

	// spiders and crawling things
	{ID: 11, Name: "wolf spider", Base: "spider", Glyph: 'S', Color: ColYellow, Level: 9, Rarity: 1,
		Flags: generate.RFAnimal | generate.RFSpider | generate.RFFriends},
	{ID: 12, Name: "phase spider", Base: "spider", Glyph: 'S', Color: ColBrightBlue, Level: 17, Rarity: 2,
		Flags: generate.RFAnimal | generate.RFSpider},
	{ID: 13, Name: "widow broodmother", Base: "spider", Glyph: 'S', Color: ColBlack, Level: 25, Rarity: 2,
		Flags: generate.RFAnimal | generate.RFSpider | generate.RFEvil, Spells: generate.RSSummonKin},

	// beasts of the mid-depths
	{ID: 14, Name: "cave bear", Base: "beast", Glyph: 'q', Color: ColYellow, Level: 14, Rarity: 1,
		Flags: generate.RFAnimal},
	{ID: 15, Name: "giant centipede", Base: "centipede", Glyph: 'c', Color: ColBrightYellow, Level: 11, Rarity: 1,
		Flags: generate.RFAnimal},
	{ID: 16, Name: "dire wolf", Base: "canine", Glyph: 'C', Color: ColGray, Level: 20, Rarity: 1,
		Flags: generate.RFAnimal | generate.RFHound | generate.RFFriends},
	{ID: 17, Name: "cave basilisk", Base: "reptile", Glyph: 'R', Color: ColBrightGreen, Level: 36, Rarity: 2,
		Flags: generate.RFAnimal | generate.RFEvil},

	// hounds hunt in packs
	{ID: 18, Name: "shadow hound", Base: "hound", Glyph: 'Z', Color: ColGray, Level: 28, Rarity: 1,
		Flags: generate.RFAnimal | generate.RFHound | generate.RFFriends},
	{ID: 19, Name: "fire hound", Base: "hound", Glyph: 'Z', Color: ColBrightRed, Level: 32, Rarity: 1,
		Flags:  generate.RFAnimal | generate.RFHound | generate.RFFriends,
		Spells: generate.RSBreatheFire},
	{ID: 20, Name: "frost hound", Base: "hound", Glyph: 'Z', Color: ColBrightCyan, Level: 32, Rarity: 1,
		Flags:  generate.RFAnimal | generate.RFHound | generate.RFFriends,
		Spells: generate.RSBreatheCold},
	{ID: 21, Name: "storm hound", Base: "hound", Glyph: 'Z', Color: ColBrightBlue, Level: 40, Rarity: 2,
		Flags:  generate.RFAnimal | generate.RFHound | generate.RFFriends,
		Spells: generate.RSBreatheElec},

	// trolls
	{ID: 22, Name: "stone troll", Base: "troll", Glyph: 'T', Color: ColGray, Level: 25, Rarity: 1,
		Flags: generate.RFTroll | generate.RFEvil | generate.RFFriends},
	{ID: 23, Name: "cave troll", Base: "troll", Glyph: 'T', Color: ColGreen, Level: 33, Rarity: 1,
		Flags: generate.RFTroll | generate.RFEvil | generate.RFFriends},
	{ID: 24, Name: "troll chieftain", Base: "troll", Glyph: 'T', Color: ColBrightRed, Level: 42, Rarity: 2,
		Flags: generate.RFTroll | generate.RFEvil},

	// the restless dead
	{ID: 25, Name: "ghoul", Base: "zombie", Glyph: 'z', Color: ColGreen, Level: 26, Rarity: 1,
		Flags: generate.RFUndead | generate.RFEvil | generate.RFFriends},
	{ID: 26, Name: "barrow wight", Base: "wight", Glyph: 'W', Color: ColGray, Level: 35, Rarity: 1,
		Flags: generate.RFUndead | generate.RFEvil, Spells: generate.RSCauseWounds},
	{ID: 27, Name: "crypt wraith", Base: "wraith", Glyph: 'W', Color: ColBlack, Level: 48, Rarity: 2,
		Flags: generate.RFUndead | generate.RFEvil, Spells: generate.RSCauseWounds},
	{ID: 28, Name: "bone lich", Base: "lich", Glyph: 'L', Color: ColBrightWhite, Level: 60, Rarity: 2,
		Flags:  generate.RFUndead | generate.RFEvil,
		Spells: generate.RSCauseWounds | generate.RSSummonKin},

	// giants
	{ID: 29, Name: "hill giant", Base: "giant", Glyph: 'P', Color: ColYellow, Level: 40, Rarity: 1,
		Flags: generate.RFGiant | generate.RFEvil},
	{ID: 30, Name: "frost giant", Base: "giant", Glyph: 'P', Color: ColBrightCyan, Level: 50, Rarity: 1,
		Flags: generate.RFGiant | generate.RFEvil, Spells: generate.RSBreatheCold},
	{ID: 31, Name: "fire giant", Base: "giant", Glyph: 'P', Color: ColBrightRed, Level: 55, Rarity: 1,
		Flags: generate.RFGiant | generate.RFEvil, Spells: generate.RSBreatheFire},

	// dragons, one per breath
	{ID: 32, Name: "young acid dragon", Base: "dragon", Glyph: 'd', Color: ColBlack, Level: 45, Rarity: 1,
		Flags: generate.RFDragon | generate.RFEvil, Spells: generate.RSBreatheAcid},
	{ID: 33, Name: "young storm dragon", Base: "dragon", Glyph: 'd', Color: ColBrightBlue, Level: 45, Rarity: 1,
		Flags: generate.RFDragon | generate.RFEvil, Spells: generate.RSBreatheElec},
	{ID: 34, Name: "young fire dragon", Base: "dragon", Glyph: 'd', Color: ColBrightRed, Level: 48, Rarity: 1,
		Flags: generate.RFDragon | generate.RFEvil, Spells: generate.RSBreatheFire},
	{ID: 35, Name: "young ice dragon", Base: "dragon", Glyph: 'd', Color: ColBrightCyan, Level: 48, Rarity: 1,
		Flags: generate.RFDragon | generate.RFEvil, Spells: generate.RSBreatheCold},
	{ID: 36, Name: "ancient acid dragon", Base: "dragon", Glyph: 'D', Color: ColBlack, Level: 62, Rarity: 2,
		Flags: generate.RFDragon | generate.RFEvil, Spells: generate.RSBreatheAcid},
	{ID: 37, Name: "ancient storm dragon", Base: "dragon", Glyph: 'D', Color: ColBrightBlue, Level: 62, Rarity: 2,
		Flags: generate.RFDragon | generate.RFEvil, Spells: generate.RSBreatheElec},
	{ID: 38, Name: "ancient fire dragon", Base: "dragon", Glyph: 'D', Color: ColBrightRed, Level: 68, Rarity: 2,
		Flags: generate.RFDragon | generate.RFEvil, Spells: generate.RSBreatheFire},
	{ID: 39, Name: "ancient ice dragon", Base: "dragon", Glyph: 'D', Color: ColBrightCyan, Level: 68, Rarity: 2,
		Flags: generate.RFDragon | generate.RFEvil, Spells: generate.RSBreatheCold},

	// demons of the deep
	{ID: 40, Name: "lesser balefiend", Base: "demon", Glyph: 'u', Color: ColRed, Level: 55, Rarity: 1,
		Flags: generate.RFDemon | generate.RFEvil | generate.RFFriends},
	{ID: 41, Name: "pit fiend", Base: "demon", Glyph: 'U', Color: ColBrightRed, Level: 72, Rarity: 2,
		Flags: generate.RFDemon | generate.RFEvil, Spells: generate.RSBreatheFire},
	{ID: 42, Name: "abyssal horror", Base: "demon", Glyph: 'U', Color: ColBrightMagenta, Level: 85, Rarity: 2,
		Flags:  generate.RFDemon | generate.RFEvil,
		Spells: generate.RSBreatheFire | generate.RSSummonKin},

	// quest guardians
	{ID: 43, Name: "Morgel, Warden of the Deep", Base: "lich", Glyph: 'L', Color: ColBrightMagenta, Level: 99, Rarity: 1,
		Flags:  generate.RFUnique | generate.RFQuestor | generate.RFUndead | generate.RFEvil,
		Spells: generate.RSCauseWounds | generate.RSSummonKin},
	{ID: 44, Name: "the Stone King", Base: "giant", Glyph: 'P', Color: ColBrightWhite, Level: 100, Rarity: 1,
		Flags:  generate.RFUnique | generate.RFQuestor | generate.RFGiant | generate.RFEvil,
		Spells: generate.RSCauseWounds | generate.RSSummonKin},
}
