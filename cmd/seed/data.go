package main

// heroSeed is one hero record plus its outgoing relation names.
// Relations resolve by name in a second pass, so ordering within
// the list does not matter.
type heroSeed struct {
	Name        string
	Role        string
	Description string
	Difficulty  int
	Tags        []string
	Synergies   []string
	Counters    []string
}

var heroSeeds = []heroSeed{
	{
		Name:        "Magneto",
		Role:        "VANGUARD",
		Description: "Master of magnetism. Nice peel and fine burst damage. Creates shields.",
		Difficulty:  2,
		Tags:        []string{"tank", "shield", "area-control", "peel"},
		Synergies:   []string{"Scarlet Witch", "Gambit"},
		Counters:    []string{"Iron Man", "The Punisher", "Cloak & Dagger"},
	},
	{
		Name:        "Doctor Strange",
		Role:        "VANGUARD",
		Description: "Sorcerer Supreme. Nice burst damage and best shield for frontline.",
		Difficulty:  2,
		Tags:        []string{"tank", "shield", "teleport", "utility"},
		Synergies:   []string{"Scarlet Witch", "Magik"},
		Counters:    []string{"Hela", "Hawkeye", "Black Panther", "Iron Man"},
	},
	{
		Name:        "Venom",
		Role:        "VANGUARD",
		Description: "Symbiote tank. High sustain and crowd control.",
		Difficulty:  3,
		Tags:        []string{"tank", "sustain", "dive", "cc"},
		Synergies:   []string{"Spider-Man", "Hela", "Jeff The Land Shark", "Magneto"},
		Counters:    []string{"Hela", "Luna Snow", "Invisible Woman", "Cloak & Dagger"},
	},
	{
		Name:        "Hulk",
		Role:        "VANGUARD",
		Description: "Raw power and disruption. Mobile playstyle to dive and get out.",
		Difficulty:  2,
		Tags:        []string{"tank", "dive", "disruption", "sustain", "shield"},
		Synergies:   []string{"Luna Snow", "Rocket Raccoon", "Magneto", "Wolverine", "Daredevil"},
		Counters:    []string{"Mantis", "Hawkeye", "Luna Snow"},
	},
	{
		Name:        "Angela",
		Role:        "VANGUARD",
		Description: "Flying mobile Vanguard. High burst damage with fast capability of getting out.",
		Difficulty:  2,
		Tags:        []string{"tank", "dive", "disruption", "sustain", "shield"},
		Synergies:   []string{"Luna Snow", "Thor"},
		Counters:    []string{"The Punisher", "Storm", "Iron Man", "Groot"},
	},
	{
		Name:        "Emma Frost",
		Role:        "VANGUARD",
		Description: "Jack of all trades. Has good damage, good shield, AoE ultimate and damage reduction.",
		Difficulty:  2,
		Tags:        []string{"tank", "cc", "disruption", "sustain", "shield"},
		Synergies:   []string{"Psylocke", "Magneto"},
		Counters:    []string{"Black Panther", "Spider-Man", "Psylocke", "Iron Fist", "Magik", "Wolverine", "Daredevil"},
	},
	{
		Name:        "Peni-Parker",
		Role:        "VANGUARD",
		Description: "Base.",
		Difficulty:  1,
		Tags:        []string{"tank", "sustain", "disruption", "healing", "cc"},
		Synergies:   []string{"Rocket Raccoon", "Jeff The Land Shark", "Mantis"},
		Counters:    []string{"Black Panther", "Spider-Man", "Psylocke", "Iron Fist", "Magik", "Wolverine", "Daredevil"},
	},
	{
		Name:        "The Thing",
		Role:        "VANGUARD",
		Description: "OG counter for dives. Has high health, high damage and mobility cancelling ability.",
		Difficulty:  1,
		Tags:        []string{"tank", "dive", "disruption", "sustain", "anti-mobility"},
		Synergies:   []string{"Invisible Woman", "Human Torch", "Wolverine"},
		Counters:    []string{"Black Panther", "Spider-Man", "Psylocke", "Iron Fist", "Magik", "Wolverine", "Daredevil"},
	},
	{
		Name:        "Groot",
		Role:        "VANGUARD",
		Description: "High health wall builder AoE enemy stack ultimate Vanguard. Solid frontline presence.",
		Difficulty:  2,
		Tags:        []string{"tank", "healing", "disruption", "sustain"},
		Synergies:   []string{"Psylocke", "Magneto"},
		Counters:    []string{"Black Panther", "Spider-Man"},
	},
	{
		Name:        "Thor",
		Role:        "VANGUARD",
		Description: "Damage focused frontline Vanguard. High burst damage and solid crowd control with ultimate.",
		Difficulty:  2,
		Tags:        []string{"tank", "dive", "disruption", "sustain", "cc"},
		Synergies:   []string{"Angela", "Magneto"},
		Counters:    []string{"Black Panther", "Spider-Man", "Psylocke", "Magik"},
	},
	{
		Name:        "Captain America",
		Role:        "VANGUARD",
		Description: "High mobility demon. Has all the stats in high levels making him a solid all-rounder Vanguard.",
		Difficulty:  3,
		Tags:        []string{"tank", "dive", "disruption", "sustain", "cc"},
		Synergies:   []string{"Winter Soldier", "Magneto"},
		Counters:    []string{"Black Panther", "Spider-Man", "Psylocke", "Daredevil"},
	},
	{
		Name:        "Rogue",
		Role:        "VANGUARD",
		Description: "Power absorber. High sustain and disruption with solid damage.",
		Difficulty:  3,
		Tags:        []string{"tank", "dive", "disruption", "sustain", "cc"},
		Synergies:   []string{"Gambit", "Magneto"},
		Counters:    []string{"Black Panther", "Spider-Man", "Psylocke", "Captain America"},
	},
	{
		Name:        "Spider-Man",
		Role:        "DUELIST",
		Description: "Web-slinging flanker. High mobility and burst damage.",
		Difficulty:  3,
		Tags:        []string{"flanker", "mobility", "dive", "burst-damage", "mobile"},
		Synergies:   []string{"Luna Snow", "Daredevil", "Venom"},
		Counters:    []string{"Scarlet Witch", "Iron Man", "Adam Warlock"},
	},
	{
		Name:        "Iron Man",
		Role:        "DUELIST",
		Description: "Flying DPS with powerful poke damage.",
		Difficulty:  2,
		Tags:        []string{"flyer", "burst-damage", "mobility", "poke"},
		Synergies:   []string{"Magneto", "Luna Snow", "Ultron", "Squirrel Girl"},
		Counters:    []string{"Groot", "The Thing", "Venom", "Peni Parker", "Ultron", "Human Torch"},
	},
	{
		Name:        "Scarlet Witch",
		Role:        "DUELIST",
		Description: "Balance of poke and burst damage. Area damage and crowd control with 1 shot ultimate.",
		Difficulty:  1,
		Tags:        []string{"area-control", "burst-damage", "zoning", "cc", "mobile"},
		Synergies:   []string{"Magneto", "Doctor Strange"},
		Counters:    []string{"Ultron", "Iron Fist", "Star-Lord", "Human Torch", "Angela"},
	},
	{
		Name:        "Star-Lord",
		Role:        "DUELIST",
		Description: "Dual pistols. Consistent damage at range. Fast ultimate farming.",
		Difficulty:  2,
		Tags:        []string{"hitscan", "mobility", "poke", "consistent-damage", "medium burst-damage", "mobile"},
		Synergies:   []string{"Rocket Raccoon", "Mantis", "Luna Snow", "Gambit"},
		Counters:    []string{"Iron Man", "Venom", "Human Torch", "Ultron", "Groot"},
	},
	{
		Name:        "Hela",
		Role:        "DUELIST",
		Description: "Goddess of Death. Powerful ranged poke damage with nice burst damage.",
		Difficulty:  2,
		Tags:        []string{"sniper", "burst-damage", "backline", "cc", "poke"},
		Synergies:   []string{"Loki", "Venom", "Mantis", "Namor"},
		Counters:    []string{"Invisible Woman", "Venom", "Doctor Strange", "The Punisher", "Iron Man", "Ultron", "Human Torch", "Angela"},
	},
	{
		Name:        "Hawkeye",
		Role:        "DUELIST",
		Description: "Master archer. Precise long-range eliminations.",
		Difficulty:  3,
		Tags:        []string{"sniper", "burst-damage", "precision", "backline"},
		Synergies:   []string{"Luna Snow", "Mantis", "Cloak & Dagger"},
		Counters:    []string{"Iron Man", "Doctor Strange", "Human Torch", "Ultron", "The Punisher", "Angela", "Cloak & Dagger"},
	},
	{
		Name:        "Black Widow",
		Role:        "DUELIST",
		Description: "Sniper. Quick eliminations.",
		Difficulty:  3,
		Tags:        []string{"backline", "stealth", "burst-damage", "sniper"},
		Synergies:   []string{"Mantis", "The Punisher"},
		Counters:    []string{"Hulk", "Iron Man", "Ultron", "Human Torch", "Angela"},
	},
	{
		Name:        "The Punisher",
		Role:        "DUELIST",
		Description: "Heavy firepower. Sustained damage dealer.",
		Difficulty:  2,
		Tags:        []string{"hitscan", "consistent-damage", "backline", "turret"},
		Synergies:   []string{"Black Widow", "Magneto", "Daredevil"},
		Counters:    []string{"The Thing", "Venom", "Hulk", "Iron Man", "Ultron", "Human Torch", "Groot", "Angela"},
	},
	{
		Name:        "Winter Soldier",
		Role:        "DUELIST",
		Description: "High burst damage with medium range. Has it all, anti mobility and repetitive ultimate.",
		Difficulty:  2,
		Tags:        []string{"constant burst-damage", "consistent-damage", "repetitive ultimate", "anti mobility", "overshield"},
		Synergies:   []string{"Captain America", "Mantis", "Magneto"},
		Counters:    []string{"Black Panther", "Spider-Man", "Hulk", "Iron Man", "Ultron", "Human Torch", "Venom", "Groot", "Magneto", "Angela"},
	},
	{
		Name:        "Psylocke",
		Role:        "DUELIST",
		Description: "High burst damage ninja flanker. Fast ultimate farm capability with high damage.",
		Difficulty:  2,
		Tags:        []string{"burst-damage", "consistent-damage", "flanker", "AoE ultimate", "mobile"},
		Synergies:   []string{"Emma Frost", "Magneto", "Venom"},
		Counters:    []string{"The Thing", "Venom", "Invisible Woman", "Groot"},
	},
	{
		Name:        "Moon Knight",
		Role:        "DUELIST",
		Description: "Lunar-powered vigilante. Versatile damage dealer with high burst and sustain.",
		Difficulty:  1,
		Tags:        []string{"Poke", "consistent-damage", "backline", "burst-damage"},
		Synergies:   []string{"Blade", "Doctor Strange", "Groot"},
		Counters:    []string{"The Thing", "Venom", "Hulk", "Loki"},
	},
	{
		Name:        "Squirrel Girl",
		Role:        "DUELIST",
		Description: "Unbeatable Squirrel Girl. High burst damage and crowd control with squirrel summons.",
		Difficulty:  1,
		Tags:        []string{"burst-damage", "consistent-damage", "backline", "cc"},
		Synergies:   []string{"Black Widow", "Magneto", "Daredevil"},
		Counters:    []string{"The Thing", "Venom", "Hulk", "Captain America", "Hela", "Winter Soldier", "The Punisher", "Peni Parker"},
	},
	{
		Name:        "Iron Fist",
		Role:        "DUELIST",
		Description: "Martial arts master. High burst damage and mobility with healing factor.",
		Difficulty:  3,
		Tags:        []string{"dive", "burst-damage", "flanker", "mobile", "sustain"},
		Synergies:   []string{"Luna Snow", "Magneto", "Venom"},
		Counters:    []string{"The Thing", "Venom", "Hulk", "Iron Man", "Ultron", "Scarlet Witch", "Doctor Strange", "Groot", "Peni Parker"},
	},
	{
		Name:        "Wolverine",
		Role:        "DUELIST",
		Description: "Berserker with healing factor. High sustain and melee burst damage.",
		Difficulty:  1,
		Tags:        []string{"dive", "consistent-damage", "burst-damage", "sustain"},
		Synergies:   []string{"Hulk", "The Thing", "Magneto", "Rocket Raccoon"},
		Counters:    []string{"Groot", "Venom", "Hulk", "Captain America", "Doctor Strange", "Peni Parker"},
	},
	{
		Name:        "Mister Fantastic",
		Role:        "DUELIST",
		Description: "Stretchable genius. Versatile damage dealer with poke and burst capabilities.",
		Difficulty:  2,
		Tags:        []string{"Flexible Playstyle", "consistent-damage", "Tank-ish", "frontline", "burst-damage"},
		Synergies:   []string{"Invisible Woman", "Magneto", "The Thing"},
		Counters:    []string{"The Thing", "Black Panther", "Hulk", "Iron Man"},
	},
	{
		Name:        "Human Torch",
		Role:        "DUELIST",
		Description: "Flaming speedster. High mobility and area damage dealer.",
		Difficulty:  3,
		Tags:        []string{"hitscan", "consistent-damage", "backline", "flying", "area-damage"},
		Synergies:   []string{"Invisible Woman", "Spider-Man", "The Thing"},
		Counters:    []string{"Groot", "Venom", "The Thing", "Emma Frost", "Doctor Strange", "Magneto"},
	},
	{
		Name:        "Phoenix",
		Role:        "DUELIST",
		Description: "Cosmic firebird. High burst damage and area control with resurrection ultimate.",
		Difficulty:  2,
		Tags:        []string{"hitscan", "consistent-damage", "backline", "area-damage"},
		Synergies:   []string{"Black Widow", "Wolverine", "Mantis"},
		Counters:    []string{"The Thing", "Venom", "Hulk", "Iron Man", "Ultron", "Human Torch", "Doctor Strange", "Captain America", "Wolverine", "Spider-Man"},
	},
	{
		Name:        "Blade",
		Role:        "DUELIST",
		Description: "Vampire hunter. High mobility and melee burst damage.",
		Difficulty:  2,
		Tags:        []string{"flexible playstyle", "consistent-damage", "heal reduction", "AoE Ultimate"},
		Synergies:   []string{"Moon Knight", "Magneto", "Venom"},
		Counters:    []string{"Phoenix", "Venom", "Hulk", "Wolverine"},
	},
	{
		Name:        "Daredevil",
		Role:        "DUELIST",
		Description: "Blind vigilante. High mobility and burst damage with crowd control.",
		Difficulty:  2,
		Tags:        []string{"dive", "consistent-damage", "burst-damage", "mobile", "Aoe Ultimate"},
		Synergies:   []string{"The Punisher", "Magneto"},
		Counters:    []string{"Luna Snow", "Adam Warlock", "Gambit", "Iron Man", "Black Widow", "Hawkeye", "Groot", "Scarlet Witch"},
	},
	{
		Name:        "Magik",
		Role:        "DUELIST",
		Description: "Queen of the Limbo. High burst damage and mobility with area control.",
		Difficulty:  3,
		Tags:        []string{"teleport", "burst-damage", "area-control", "mobile"},
		Synergies:   []string{"Doctor Strange"},
		Counters:    []string{"Doctor Strange", "Magneto", "Groot", "Venom"},
	},
	{
		Name:        "Namor",
		Role:        "DUELIST",
		Description: "Atlantean king. Constant damage with Squids while having burst-damage with other skills.",
		Difficulty:  2,
		Tags:        []string{"consistent-damage", "burst-damage", "area-control", "sustain"},
		Synergies:   []string{"Hela"},
		Counters:    []string{"Black Panther", "Spider-Man", "Wolverine", "Iron Fist"},
	},
	{
		Name:        "Black Panther",
		Role:        "DUELIST",
		Description: "Stealthy assassin. High burst damage and mobility.",
		Difficulty:  3,
		Tags:        []string{"stealth", "burst-damage", "dive", "mobile", "flanker"},
		Synergies:   []string{"Hulk"},
		Counters:    []string{"Invisible Woman", "Jeff The Land Shark"},
	},
	{
		Name:        "Luna Snow",
		Role:        "STRATEGIST",
		Description: "K-pop star healer. Solid healing and damage boost with ultimate.",
		Difficulty:  2,
		Tags:        []string{"healer", "damage-boost", "aoe", "utility", "cc"},
		Synergies:   []string{"Spider-Man", "Iron Man", "Hulk", "Venom", "Star-Lord", "Hawkeye", "Iron Fist", "Captain America", "Daredevil", "Black Panther", "Angela"},
		Counters:    []string{"Doctor Strange", "Spider-Man", "Scarlet Witch", "Black Panther"},
	},
	{
		Name:        "Loki",
		Role:        "STRATEGIST",
		Description: "Trickster god. Clones, heal and invisibility.",
		Difficulty:  2,
		Tags:        []string{"healer", "stealth", "utility", "clones"},
		Synergies:   []string{"Mantis", "Luna Snow", "Cloak & Dagger"},
		Counters:    []string{"Scarlet Witch", "Star-Lord"},
	},
	{
		Name:        "Mantis",
		Role:        "STRATEGIST",
		Description: "Empath healer. Sleep abilities and damage boost as addition to healing.",
		Difficulty:  3,
		Tags:        []string{"healer", "cc", "utility", "damage-boost"},
		Synergies:   []string{"Groot", "Black Widow", "Hawkeye", "Loki"},
		Counters:    []string{"Venom", "Hulk", "Spider-Man"},
	},
	{
		Name:        "Rocket Raccoon",
		Role:        "STRATEGIST",
		Description: "Tech genius. Armor packs and revive station.",
		Difficulty:  1,
		Tags:        []string{"armor", "utility", "area-denial", "resurrection", "Constant healing"},
		Synergies:   []string{"Groot", "Peni Parker"},
		Counters:    []string{"Spider-Man", "Hawkeye"},
	},
	{
		Name:        "Adam Warlock",
		Role:        "STRATEGIST",
		Description: "Cosmic healer. Strong heals, Anti dive skill, Resurrection and poke damage.",
		Difficulty:  2,
		Tags:        []string{"burst-healing", "anti-dive", "resurrection", "poke"},
		Synergies:   []string{"Luna Snow"},
		Counters:    []string{"Spider-Man", "Black Panther", "Daredevil", "Iron Fist", "Magik", "Psylocke", "Winter Soldier"},
	},
	{
		Name:        "Jeff The Land Shark",
		Role:        "STRATEGIST",
		Description: "Adorable shark. Provides healing and crowd control.",
		Difficulty:  2,
		Tags:        []string{"healing", "sustain", "Devour Ultimate", "burst-healing", "Constant healing"},
		Synergies:   []string{"Venom", "Groot"},
		Counters:    []string{"Spider-Man", "Black Panther", "Iron Fist"},
	},
	{
		Name:        "Cloak & Dagger",
		Role:        "STRATEGIST",
		Description: "Dynamic duo. Area healing and crowd control with stealth capabilities.",
		Difficulty:  1,
		Tags:        []string{"area-healing", "blind", "stealth", "utility", "Long ultimate duration"},
		Synergies:   []string{"Hawkeye"},
		Counters:    []string{"Spider-Man", "Black Panther"},
	},
	{
		Name:        "Ultron",
		Role:        "STRATEGIST",
		Description: "AI overlord. Provides armor and healing.",
		Difficulty:  2,
		Tags:        []string{"armor", "utility", "area-denial", "flying", "Constant healing", "burst-damage"},
		Synergies:   []string{"Iron Man"},
		Counters:    []string{"Peni Parker"},
	},
	{
		Name:        "Invisible Woman",
		Role:        "STRATEGIST",
		Description: "Force field master. Provides shields, healing and crowd control.",
		Difficulty:  2,
		Tags:        []string{"shield", "healing", "cc", "utility"},
		Synergies:   []string{"Mister Fantastic", "The Thing", "Human Torch"},
		Counters:    []string{"Spider-Man", "Doctor Strange", "Scarlet Witch"},
	},
	{
		Name:        "Gambit",
		Role:        "STRATEGIST",
		Description: "Card-throwing mutant. Provides healing, damage boost, heal reduction, speed and ult charge speed.",
		Difficulty:  3,
		Tags:        []string{"healing", "damage-boost", "heal-reduction", "speed-boost", "ultimate farm boost"},
		Synergies:   []string{"Magneto"},
		Counters:    []string{"Blade", "Wolverine"},
	},
}
