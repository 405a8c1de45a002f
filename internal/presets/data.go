package presets

// timezones lists UTC offsets with example locations.
var timezones = []Timezone{
	{Code: "UTC-10", Examples: []string{"Hawaii"}},
	{Code: "UTC-9", Examples: []string{"Alaska"}},
	{Code: "UTC-8", Examples: []string{"US West", "Vancouver"}},
	{Code: "UTC-7", Examples: []string{"US MT", "Arizona"}},
	{Code: "UTC-6", Examples: []string{"Texas", "Mexico City"}},
	{Code: "UTC-5", Examples: []string{"New York", "Toronto", "Peru", "Colombia"}},
	{Code: "UTC-4", Examples: []string{"Caribbean", "Venezuela"}},
	{Code: "UTC-3", Examples: []string{"Brazil", "Argentina", "Uruguay"}},
	{Code: "UTC-1", Examples: []string{"Azores"}},
	{Code: "UTC±0", Examples: []string{"UK", "Portugal", "Ghana"}},
	{Code: "UTC+1", Examples: []string{"Spain", "France", "Germany", "Nigeria"}},
	{Code: "UTC+2", Examples: []string{"Italy", "Greece", "Egypt", "South Africa"}},
	{Code: "UTC+3", Examples: []string{"Turkey", "Saudi Arabia", "Kenya"}},
	{Code: "UTC+4", Examples: []string{"UAE", "Oman", "Azerbaijan"}},
	{Code: "UTC+5", Examples: []string{"Pakistan", "Uzbekistan"}},
	{Code: "UTC+5:30", Examples: []string{"India", "Sri Lanka"}},
	{Code: "UTC+6", Examples: []string{"Bangladesh", "Kazakhstan (E)"}},
	{Code: "UTC+7", Examples: []string{"Indonesia (WIB)", "Thailand", "Vietnam"}},
	{Code: "UTC+8", Examples: []string{"Malaysia", "Singapore", "China", "WITA"}},
	{Code: "UTC+9", Examples: []string{"Japan", "South Korea", "WIT"}},
	{Code: "UTC+9:30", Examples: []string{"Australia Central"}},
	{Code: "UTC+10", Examples: []string{"Australia East", "PNG"}},
	{Code: "UTC+12", Examples: []string{"New Zealand", "Fiji"}},
	{Code: "UTC+13", Examples: []string{"Samoa"}},
}

// audiences lists per-country audience profiles.
var audiences = []Audience{
	{
		Country: "Amerika Serikat", Language: "Inggris", Timezone: "UTC-5..-8",
		Platforms: []string{"YouTube", "Shorts", "TikTok"},
		Interests: []string{"how-to", "review", "tech", "finance", "lifestyle"},
		PurchasingPower: "Tinggi",
		BestPostTimes: []string{"11:30-13:00", "18:00-21:00"},
		CulturalNotes: "Headline to the point, thumbnail kontras",
	},
	{
		Country: "Kanada", Language: "Inggris/Prancis", Timezone: "UTC-5..-8",
		Platforms: []string{"YouTube", "TikTok", "Instagram"},
		Interests: []string{"edukasi", "outdoor", "teknologi", "karier"},
		PurchasingPower: "Tinggi",
		BestPostTimes: []string{"12:00-14:00", "18:00-21:00"},
		CulturalNotes: "Pertimbangkan EN/FR untuk Quebec",
	},
	{
		Country: "Meksiko", Language: "Spanyol", Timezone: "UTC-6..-7",
		Platforms: []string{"YouTube", "Facebook", "TikTok"},
		Interests: []string{"hiburan", "musik", "lifestyle hemat", "sepak bola"},
		PurchasingPower: "Menengah",
		BestPostTimes: []string{"12:00-14:00", "19:00-21:00"},
		CulturalNotes: "Gaya hangat dan komunikatif",
	},
	{
		Country: "Brasil", Language: "Portugis", Timezone: "UTC-3",
		Platforms: []string{"YouTube", "Instagram", "TikTok"},
		Interests: []string{"musik", "sepak bola", "komedi", "DIY"},
		PurchasingPower: "Menengah",
		BestPostTimes: []string{"12:00-14:00", "19:00-21:00"},
		CulturalNotes: "Enerjik, visual kuat",
	},
	{
		Country: "Argentina", Language: "Spanyol", Timezone: "UTC-3",
		Platforms: []string{"YouTube", "TikTok"},
		Interests: []string{"sepak bola", "opini", "edukasi singkat"},
		PurchasingPower: "Menengah",
		BestPostTimes: []string{"12:00-14:00", "20:00-22:00"},
		CulturalNotes: "Humor dan konteks lokal",
	},
	{
		Country: "Kolombia", Language: "Spanyol", Timezone: "UTC-5",
		Platforms: []string{"YouTube", "Facebook", "TikTok"},
		Interests: []string{"tutorial praktis", "bisnis kecil", "hiburan ringan"},
		PurchasingPower: "Menengah",
		BestPostTimes: []string{"12:00-14:00", "19:00-21:00"},
		CulturalNotes: "Judul jelas, tanpa jargon",
	},
	{
		Country: "Peru", Language: "Spanyol", Timezone: "UTC-5",
		Platforms: []string{"YouTube", "Facebook", "TikTok"},
		Interests: []string{"tutorial", "edukasi", "hiburan"},
		PurchasingPower: "Menengah",
		BestPostTimes: []string{"12:00-14:00", "19:00-21:00"},
		CulturalNotes: "Praktis dan relevan",
	},
	{
		Country: "Inggris", Language: "Inggris", Timezone: "UTC±0/UTC+1",
		Platforms: []string{"YouTube", "TikTok", "Instagram"},
		Interests: []string{"edukasi", "commentary", "tech", "finansial"},
		PurchasingPower: "Tinggi",
		BestPostTimes: []string{"12:00-14:00", "18:00-21:00"},
		CulturalNotes: "Bukti/data singkat menaikkan trust",
	},
	{
		Country: "Irlandia", Language: "Inggris/Irlandia", Timezone: "UTC±0",
		Platforms: []string{"YouTube", "TikTok"},
		Interests: []string{"edukasi", "karier", "finansial"},
		PurchasingPower: "Tinggi",
		BestPostTimes: []string{"12:00-14:00", "18:00-21:00"},
		CulturalNotes: "Nada ramah",
	},
	{
		Country: "Jerman", Language: "Jerman", Timezone: "UTC+1",
		Platforms: []string{"YouTube", "Instagram"},
		Interests: []string{"engineering", "review", "produktif"},
		PurchasingPower: "Tinggi",
		BestPostTimes: []string{"12:00-14:00", "18:00-20:00"},
		CulturalNotes: "Struktur rapi, to the point",
	},
	{
		Country: "Prancis", Language: "Prancis", Timezone: "UTC+1",
		Platforms: []string{"YouTube", "Instagram"},
		Interests: []string{"lifestyle", "kuliner", "fashion"},
		PurchasingPower: "Tinggi",
		BestPostTimes: []string{"12:00-14:00", "19:00-21:00"},
		CulturalNotes: "Storytelling dan estetika",
	},
	{
		Country: "Spanyol", Language: "Spanyol", Timezone: "UTC+1",
		Platforms: []string{"YouTube", "TikTok"},
		Interests: []string{"hiburan", "sepak bola", "travel"},
		PurchasingPower: "Menengah-tinggi",
		BestPostTimes: []string{"13:00-15:00", "20:00-22:00"},
		CulturalNotes: "Nada akrab",
	},
	{
		Country: "Italia", Language: "Italia", Timezone: "UTC+1",
		Platforms: []string{"YouTube", "Instagram"},
		Interests: []string{"kuliner", "design", "otomotif"},
		PurchasingPower: "Tinggi",
		BestPostTimes: []string{"12:00-14:00", "19:00-21:00"},
		CulturalNotes: "Tekankan kualitas & estetika",
	},
	{
		Country: "Belanda", Language: "Belanda/Inggris", Timezone: "UTC+1",
		Platforms: []string{"YouTube", "Instagram"},
		Interests: []string{"startup", "produktif", "sustainability"},
		PurchasingPower: "Tinggi",
		BestPostTimes: []string{"12:00-14:00", "18:00-20:00"},
		CulturalNotes: "Langsung",
	},
	{
		Country: "Swedia", Language: "Swedia/Inggris", Timezone: "UTC+1",
		Platforms: []string{"YouTube"},
		Interests: []string{"tech", "minimalism", "karier"},
		PurchasingPower: "Tinggi",
		BestPostTimes: []string{"12:00-14:00", "18:00-20:00"},
		CulturalNotes: "Nada tenang, informatif",
	},
	{
		Country: "Norwegia", Language: "Norwegia", Timezone: "UTC+1",
		Platforms: []string{"YouTube"},
		Interests: []string{"outdoor", "tech", "produktif"},
		PurchasingPower: "Tinggi",
		BestPostTimes: []string{"12:00-14:00", "18:00-20:00"},
		CulturalNotes: "Ringkas",
	},
	{
		Country: "Denmark", Language: "Denmark", Timezone: "UTC+1",
		Platforms: []string{"YouTube"},
		Interests: []string{"design", "tech", "edukasi"},
		PurchasingPower: "Tinggi",
		BestPostTimes: []string{"12:00-14:00", "18:00-20:00"},
		CulturalNotes: "Sederhana & fungsional",
	},
	{
		Country: "Polandia", Language: "Polandia", Timezone: "UTC+1",
		Platforms: []string{"YouTube", "Facebook"},
		Interests: []string{"edukasi", "gaming", "DIY"},
		PurchasingPower: "Menengah",
		BestPostTimes: []string{"12:00-14:00", "18:00-21:00"},
		CulturalNotes: "Praktis",
	},
	{
		Country: "Turki", Language: "Turki", Timezone: "UTC+3",
		Platforms: []string{"YouTube", "Instagram"},
		Interests: []string{"bisnis kecil", "hiburan", "kuliner"},
		PurchasingPower: "Menengah",
		BestPostTimes: []string{"12:00-14:00", "19:00-21:00"},
		CulturalNotes: "Sensitif budaya",
	},
	{
		Country: "Rusia (barat)", Language: "Rusia", Timezone: "UTC+3",
		Platforms: []string{"YouTube"},
		Interests: []string{"tech", "edukasi", "sains"},
		PurchasingPower: "Menengah",
		BestPostTimes: []string{"12:00-14:00", "18:00-21:00"},
		CulturalNotes: "Detail",
	},
	{
		Country: "Arab Saudi", Language: "Arab", Timezone: "UTC+3",
		Platforms: []string{"YouTube", "Snapchat", "TikTok"},
		Interests: []string{"religi", "otomotif", "keluarga"},
		PurchasingPower: "Tinggi",
		BestPostTimes: []string{"13:00-15:00", "20:00-23:00"},
		CulturalNotes: "Hormati norma",
	},
	{
		Country: "UEA", Language: "Arab/Inggris", Timezone: "UTC+4",
		Platforms: []string{"YouTube", "Instagram"},
		Interests: []string{"luxury", "karier", "travel"},
		PurchasingPower: "Tinggi",
		BestPostTimes: []string{"12:00-14:00", "19:00-22:00"},
		CulturalNotes: "Visual premium",
	},
	{
		Country: "Mesir", Language: "Arab", Timezone: "UTC+2",
		Platforms: []string{"YouTube", "Facebook"},
		Interests: []string{"berita", "edukasi praktis", "hiburan"},
		PurchasingPower: "Menengah",
		BestPostTimes: []string{"13:00-15:00", "19:00-21:00"},
		CulturalNotes: "Narasi sederhana",
	},
	{
		Country: "Nigeria", Language: "Inggris/Pidgin", Timezone: "UTC+1",
		Platforms: []string{"YouTube", "TikTok"},
		Interests: []string{"musik", "komedi", "bisnis digital"},
		PurchasingPower: "Menengah",
		BestPostTimes: []string{"12:00-14:00", "19:00-21:00"},
		CulturalNotes: "Enerjik",
	},
	{
		Country: "Afrika Selatan", Language: "Inggris + lokal", Timezone: "UTC+2",
		Platforms: []string{"YouTube", "TikTok"},
		Interests: []string{"travel", "otomotif", "DIY"},
		PurchasingPower: "Menengah",
		BestPostTimes: []string{"12:00-14:00", "18:00-20:00"},
		CulturalNotes: "Konteks lokal",
	},
	{
		Country: "Kenya", Language: "Inggris/Swahili", Timezone: "UTC+3",
		Platforms: []string{"YouTube", "Facebook"},
		Interests: []string{"edukasi", "agribisnis", "tech mobile"},
		PurchasingPower: "Menengah",
		BestPostTimes: []string{"12:00-14:00", "19:00-21:00"},
		CulturalNotes: "Solusi praktis",
	},
	{
		Country: "Ethiopia", Language: "Amharic/Inggris", Timezone: "UTC+3",
		Platforms: []string{"YouTube"},
		Interests: []string{"edukasi", "musik", "komedi"},
		PurchasingPower: "Menengah",
		BestPostTimes: []string{"12:00-14:00", "19:00-21:00"},
		CulturalNotes: "Sederhana",
	},
	{
		Country: "India", Language: "Hindi/Inggris + regional", Timezone: "UTC+5:30",
		Platforms: []string{"YouTube", "Shorts"},
		Interests: []string{"exam prep", "coding", "finansial", "cricket"},
		PurchasingPower: "Beragam",
		BestPostTimes: []string{"12:00-14:00", "19:00-22:00"},
		CulturalNotes: "Nilai praktis & harga",
	},
	{
		Country: "Pakistan", Language: "Urdu/Inggris", Timezone: "UTC+5",
		Platforms: []string{"YouTube", "TikTok"},
		Interests: []string{"edukasi", "religi", "hiburan"},
		PurchasingPower: "Menengah",
		BestPostTimes: []string{"12:00-14:00", "19:00-21:00"},
		CulturalNotes: "Hormati norma",
	},
	{
		Country: "Bangladesh", Language: "Bengali", Timezone: "UTC+6",
		Platforms: []string{"YouTube", "Facebook"},
		Interests: []string{"tutorial", "mobile tech"},
		PurchasingPower: "Menengah",
		BestPostTimes: []string{"12:00-14:00", "19:00-21:00"},
		CulturalNotes: "Manfaat langsung",
	},
	{
		Country: "Indonesia (WIB)", Language: "Indonesia", Timezone: "UTC+7",
		Platforms: []string{"YouTube", "TikTok", "Instagram"},
		Interests: []string{"gaming", "kuliner", "daily life", "tips kerja"},
		PurchasingPower: "Menengah",
		BestPostTimes: []string{"12:00-14:00", "19:00-21:00"},
		CulturalNotes: "Ramah & to the point",
	},
	{
		Country: "Indonesia (WITA)", Language: "Indonesia", Timezone: "UTC+8",
		Platforms: []string{"YouTube", "TikTok", "Instagram"},
		Interests: []string{"gaming", "kuliner", "daily life", "tips kerja"},
		PurchasingPower: "Menengah",
		BestPostTimes: []string{"12:00-14:00", "19:00-21:00"},
		CulturalNotes: "Ramah & to the point",
	},
	{
		Country: "Indonesia (WIT)", Language: "Indonesia", Timezone: "UTC+9",
		Platforms: []string{"YouTube", "TikTok", "Instagram"},
		Interests: []string{"gaming", "kuliner", "daily life", "tips kerja"},
		PurchasingPower: "Menengah",
		BestPostTimes: []string{"12:00-14:00", "19:00-21:00"},
		CulturalNotes: "Ramah & to the point",
	},
	{
		Country: "Malaysia", Language: "Melayu/Inggris/Chinese", Timezone: "UTC+8",
		Platforms: []string{"YouTube", "TikTok"},
		Interests: []string{"kuliner", "review", "finansial pemula"},
		PurchasingPower: "Menengah-tinggi",
		BestPostTimes: []string{"12:00-14:00", "20:00-22:00"},
		CulturalNotes: "Campuran BM/EN efektif",
	},
	{
		Country: "Singapura", Language: "Inggris/Chinese/Melayu/Tamil", Timezone: "UTC+8",
		Platforms: []string{"YouTube", "Instagram"},
		Interests: []string{"karier", "finansial", "tech"},
		PurchasingPower: "Sangat tinggi",
		BestPostTimes: []string{"12:00-14:00", "19:00-21:00"},
		CulturalNotes: "Efisien & kredibel",
	},
	{
		Country: "Thailand", Language: "Thai", Timezone: "UTC+7",
		Platforms: []string{"YouTube", "Facebook"},
		Interests: []string{"kuliner", "travel", "komedi"},
		PurchasingPower: "Menengah",
		BestPostTimes: []string{"12:00-14:00", "19:00-21:00"},
		CulturalNotes: "Visual cerah",
	},
	{
		Country: "Vietnam", Language: "Vietnam", Timezone: "UTC+7",
		Platforms: []string{"YouTube", "TikTok"},
		Interests: []string{"produktif", "belajar", "kuliner"},
		PurchasingPower: "Menengah",
		BestPostTimes: []string{"12:00-14:00", "19:00-21:00"},
		CulturalNotes: "Praktis & ringkas",
	},
	{
		Country: "Filipina", Language: "Filipino/Inggris", Timezone: "UTC+8",
		Platforms: []string{"YouTube", "Facebook"},
		Interests: []string{"musik", "vlog", "karier"},
		PurchasingPower: "Menengah",
		BestPostTimes: []string{"12:00-14:00", "19:00-21:00"},
		CulturalNotes: "Ramah & personal",
	},
	{
		Country: "Jepang", Language: "Jepang", Timezone: "UTC+9",
		Platforms: []string{"YouTube"},
		Interests: []string{"DIY", "teknologi", "belajar"},
		PurchasingPower: "Tinggi",
		BestPostTimes: []string{"12:00-14:00", "19:00-21:00"},
		CulturalNotes: "Detail & kualitas",
	},
	{
		Country: "Korea Selatan", Language: "Korea", Timezone: "UTC+9",
		Platforms: []string{"YouTube", "Shorts"},
		Interests: []string{"K-culture", "tech", "kecantikan"},
		PurchasingPower: "Tinggi",
		BestPostTimes: []string{"12:00-14:00", "19:00-22:00"},
		CulturalNotes: "Visual rapi & cepat",
	},
	{
		Country: "Tiongkok (urban)", Language: "Mandarin", Timezone: "UTC+8",
		Platforms: []string{"YouTube (internasional)"},
		Interests: []string{"tech", "edukasi", "bisnis"},
		PurchasingPower: "Tinggi (urban)",
		BestPostTimes: []string{"12:00-14:00", "19:00-21:00"},
		CulturalNotes: "Sensitivitas regulasi",
	},
	{
		Country: "Hong Kong", Language: "Cantonese/Inggris", Timezone: "UTC+8",
		Platforms: []string{"YouTube", "Instagram"},
		Interests: []string{"bisnis", "finansial", "tech"},
		PurchasingPower: "Tinggi",
		BestPostTimes: []string{"12:00-14:00", "19:00-21:00"},
		CulturalNotes: "Cepat & profesional",
	},
	{
		Country: "Taiwan", Language: "Mandarin", Timezone: "UTC+8",
		Platforms: []string{"YouTube"},
		Interests: []string{"tech", "edukasi", "gaming"},
		PurchasingPower: "Tinggi",
		BestPostTimes: []string{"12:00-14:00", "19:00-21:00"},
		CulturalNotes: "Detail",
	},
	{
		Country: "Australia Timur", Language: "Inggris", Timezone: "UTC+10",
		Platforms: []string{"YouTube"},
		Interests: []string{"outdoor", "keuangan pribadi", "karier"},
		PurchasingPower: "Tinggi",
		BestPostTimes: []string{"12:00-14:00", "18:00-20:00"},
		CulturalNotes: "Langsung",
	},
	{
		Country: "Australia Tengah", Language: "Inggris", Timezone: "UTC+9:30",
		Platforms: []string{"YouTube"},
		Interests: []string{"outdoor", "DIY", "karier"},
		PurchasingPower: "Tinggi",
		BestPostTimes: []string{"12:00-14:00", "18:00-20:00"},
		CulturalNotes: "Santai",
	},
	{
		Country: "Australia Barat", Language: "Inggris", Timezone: "UTC+8",
		Platforms: []string{"YouTube"},
		Interests: []string{"outdoor", "tech"},
		PurchasingPower: "Tinggi",
		BestPostTimes: []string{"12:00-14:00", "18:00-20:00"},
		CulturalNotes: "Straightforward",
	},
	{
		Country: "Selandia Baru", Language: "Inggris/Te Reo", Timezone: "UTC+12",
		Platforms: []string{"YouTube"},
		Interests: []string{"travel", "keluarga", "produktif"},
		PurchasingPower: "Tinggi",
		BestPostTimes: []string{"12:00-14:00", "18:00-20:00"},
		CulturalNotes: "Humanis, ringan",
	},
	{
		Country: "Portugal", Language: "Portugis", Timezone: "UTC±0",
		Platforms: []string{"YouTube"},
		Interests: []string{"travel", "kuliner", "lifestyle"},
		PurchasingPower: "Menengah-tinggi",
		BestPostTimes: []string{"12:00-14:00", "19:00-21:00"},
		CulturalNotes: "Ramah",
	},
	{
		Country: "Yunani", Language: "Yunani", Timezone: "UTC+2",
		Platforms: []string{"YouTube"},
		Interests: []string{"travel", "kuliner", "sejarah"},
		PurchasingPower: "Menengah",
		BestPostTimes: []string{"12:00-14:00", "19:00-21:00"},
		CulturalNotes: "Story",
	},
	{
		Country: "Ceko", Language: "Ceko", Timezone: "UTC+1",
		Platforms: []string{"YouTube"},
		Interests: []string{"gaming", "tech", "DIY"},
		PurchasingPower: "Menengah",
		BestPostTimes: []string{"12:00-14:00", "18:00-21:00"},
		CulturalNotes: "Praktis",
	},
	{
		Country: "Hungaria", Language: "Hungaria", Timezone: "UTC+1",
		Platforms: []string{"YouTube"},
		Interests: []string{"edukasi", "tech"},
		PurchasingPower: "Menengah",
		BestPostTimes: []string{"12:00-14:00", "18:00-20:00"},
		CulturalNotes: "Ringkas",
	},
	{
		Country: "Rumania", Language: "Rumania", Timezone: "UTC+2",
		Platforms: []string{"YouTube"},
		Interests: []string{"tutorial", "gaming"},
		PurchasingPower: "Menengah",
		BestPostTimes: []string{"12:00-14:00", "18:00-20:00"},
		CulturalNotes: "Langsung",
	},
	{
		Country: "Ukraina", Language: "Ukraina/Rusia", Timezone: "UTC+2/+3",
		Platforms: []string{"YouTube"},
		Interests: []string{"edukasi", "tech"},
		PurchasingPower: "Menengah",
		BestPostTimes: []string{"12:00-14:00", "18:00-21:00"},
		CulturalNotes: "Informasi jelas",
	},
	{
		Country: "Belgia", Language: "Belanda/Prancis", Timezone: "UTC+1",
		Platforms: []string{"YouTube"},
		Interests: []string{"edukasi", "kuliner", "tech"},
		PurchasingPower: "Tinggi",
		BestPostTimes: []string{"12:00-14:00", "19:00-21:00"},
		CulturalNotes: "Multibahasa",
	},
	{
		Country: "Swiss", Language: "DE/FR/IT", Timezone: "UTC+1",
		Platforms: []string{"YouTube"},
		Interests: []string{"keuangan", "tech", "travel"},
		PurchasingPower: "Sangat tinggi",
		BestPostTimes: []string{"12:00-14:00", "18:00-20:00"},
		CulturalNotes: "Akurat",
	},
	{
		Country: "Austria", Language: "Jerman", Timezone: "UTC+1",
		Platforms: []string{"YouTube"},
		Interests: []string{"edukasi", "musik", "tech"},
		PurchasingPower: "Tinggi",
		BestPostTimes: []string{"12:00-14:00", "18:00-20:00"},
		CulturalNotes: "Terstruktur",
	},
	{
		Country: "Finlandia", Language: "Finlandia/Swedia", Timezone: "UTC+2",
		Platforms: []string{"YouTube"},
		Interests: []string{"gaming", "tech", "edukasi"},
		PurchasingPower: "Tinggi",
		BestPostTimes: []string{"12:00-14:00", "18:00-20:00"},
		CulturalNotes: "Ringkas",
	},
	{
		Country: "Maroko", Language: "Arab/Prancis", Timezone: "UTC±0",
		Platforms: []string{"YouTube"},
		Interests: []string{"kuliner", "travel", "edukasi"},
		PurchasingPower: "Menengah",
		BestPostTimes: []string{"12:00-14:00", "19:00-21:00"},
		CulturalNotes: "Hangat",
	},
	{
		Country: "Aljazair", Language: "Arab/Prancis", Timezone: "UTC+1",
		Platforms: []string{"YouTube"},
		Interests: []string{"edukasi", "otomotif"},
		PurchasingPower: "Menengah",
		BestPostTimes: []string{"12:00-14:00", "19:00-21:00"},
		CulturalNotes: "Praktis",
	},
	{
		Country: "Tunisia", Language: "Arab/Prancis", Timezone: "UTC+1",
		Platforms: []string{"YouTube"},
		Interests: []string{"kuliner", "edukasi"},
		PurchasingPower: "Menengah",
		BestPostTimes: []string{"12:00-14:00", "19:00-21:00"},
		CulturalNotes: "Friendly",
	},
	{
		Country: "Ghana", Language: "Inggris", Timezone: "UTC±0",
		Platforms: []string{"YouTube"},
		Interests: []string{"musik", "bisnis digital"},
		PurchasingPower: "Menengah",
		BestPostTimes: []string{"12:00-14:00", "19:00-21:00"},
		CulturalNotes: "Relatable",
	},
	{
		Country: "Kenya", Language: "Inggris/Swahili", Timezone: "UTC+3",
		Platforms: []string{"YouTube"},
		Interests: []string{"edukasi", "agribisnis", "tech mobile"},
		PurchasingPower: "Menengah",
		BestPostTimes: []string{"12:00-14:00", "19:00-21:00"},
		CulturalNotes: "Solusi praktis",
	},
	{
		Country: "Israel", Language: "Ibrani/Inggris", Timezone: "UTC+2/+3",
		Platforms: []string{"YouTube"},
		Interests: []string{"tech", "startup", "edukasi"},
		PurchasingPower: "Tinggi",
		BestPostTimes: []string{"12:00-14:00", "19:00-21:00"},
		CulturalNotes: "Data-driven",
	},
	{
		Country: "Qatar", Language: "Arab/Inggris", Timezone: "UTC+3",
		Platforms: []string{"YouTube", "Instagram"},
		Interests: []string{"luxury", "olahraga"},
		PurchasingPower: "Sangat tinggi",
		BestPostTimes: []string{"12:00-14:00", "19:00-22:00"},
		CulturalNotes: "Premium",
	},
	{
		Country: "Oman", Language: "Arab", Timezone: "UTC+4",
		Platforms: []string{"YouTube"},
		Interests: []string{"travel", "keluarga"},
		PurchasingPower: "Tinggi",
		BestPostTimes: []string{"12:00-14:00", "19:00-22:00"},
		CulturalNotes: "Hangat",
	},
}

// creatorPresets are sample channel breakdowns.
var creatorPresets = []CreatorPreset{
	{
		Handle: "@AliAbdaal", Niche: "produktif/edukasi", Persona: "mentor santai",
		Patterns: CreatorPatterns{Format: "talking head + b-roll", Title: "angka + manfaat jelas", CTA: "subscribe mingguan"},
	},
	{
		Handle: "@MarquesBrownlee", Niche: "tech review", Persona: "analis tenang",
		Patterns: CreatorPatterns{Format: "review sinematik", Title: "model + tahun + verdict", CTA: "komentar pendapat"},
	},
	{
		Handle: "@MrBeast", Niche: "entertainment/mega challenge", Persona: "high energy",
		Patterns: CreatorPatterns{Format: "challenge besar", Title: "premis ekstrem", CTA: "like/subscribe awal"},
	},
	{
		Handle: "@JoshuaWeissman", Niche: "kuliner", Persona: "chef edukatif",
		Patterns: CreatorPatterns{Format: "cooking + humor", Title: "resep + benefit", CTA: "coba dan komentar"},
	},
	{
		Handle: "@Fireship", Niche: "coding/tech", Persona: "cepat & lucu",
		Patterns: CreatorPatterns{Format: "screencast cepat", Title: "buzzword + hot take", CTA: "subscribe singkat"},
	},
}

// creatorTemplate is the blank worksheet for analysing a creator.
var creatorTemplate = CreatorTemplate{
	Identity: CreatorIdentity{
		Handle:       "@NamaYouTuber",
		Niche:        "",
		Persona:      "",
		AudienceCore: "(negara/zona waktu, bahasa)",
	},
	ContentPattern: ContentPattern{
		Format:   "talking head / b-roll / screencast / vlog",
		Duration: "short 30-60s / long 8-12m",
		Hook:     "pertanyaan berani / angka / sebelum-sesudah",
		Angle:    "list / studi kasus 30-hari / before-after / checklist",
		CTA:      "subscribe/like/komentar",
	},
	TitleThumbnail: TitleThumbnail{
		TitleFormula:   "angka + manfaat + batas waktu",
		KeywordsCommon: []string{"contoh", "kata", "kunci"},
		ThumbnailStyle: "close-up + teks 2-4 kata + warna kontras",
	},
	Schedule: Schedule{
		DaysHours:      "hari & jam unggah lokal",
		Frequency:      "x video/minggu",
		TopVideosTheme: "tema bersama dari 3-5 video teratas",
	},
	GapsOpportunities: GapsOpportunities{
		MissingTopics:    []string{},
		FormatVariations: []string{},
		CollabCandidates: []string{},
	},
	OutputStructure: OutputStructure{Hashtags: []string{}},
}
