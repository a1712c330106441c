package content

// alphabets holds vowels followed by consonants for each bundled language.
// The first six letters of every table are vowels; the memory game deals
// its deck from them.
var alphabets = map[string][]Letter{
	"hindi": letterTable("hi", [][2]string{
		{"अ", "a"}, {"आ", "aa"}, {"इ", "i"}, {"ई", "ee"}, {"उ", "u"}, {"ऊ", "oo"},
		{"ऋ", "ri"}, {"ए", "e"}, {"ऐ", "ai"}, {"ओ", "o"}, {"औ", "au"},
		{"क", "ka"}, {"ख", "kha"}, {"ग", "ga"}, {"घ", "gha"}, {"ङ", "nga"},
		{"च", "cha"}, {"छ", "chha"}, {"ज", "ja"}, {"झ", "jha"}, {"ञ", "nya"},
		{"ट", "ṭa"}, {"ठ", "ṭha"}, {"ड", "ḍa"}, {"ढ", "ḍha"}, {"ण", "ṇa"},
		{"त", "ta"}, {"थ", "tha"}, {"द", "da"}, {"ध", "dha"}, {"न", "na"},
		{"प", "pa"}, {"फ", "pha"}, {"ब", "ba"}, {"भ", "bha"}, {"म", "ma"},
		{"य", "ya"}, {"र", "ra"}, {"ल", "la"}, {"व", "va"},
		{"श", "sha"}, {"ष", "ṣa"}, {"स", "sa"}, {"ह", "ha"},
	}),
	"tamil": letterTable("ta", [][2]string{
		{"அ", "a"}, {"ஆ", "aa"}, {"இ", "i"}, {"ஈ", "ee"}, {"உ", "u"}, {"ஊ", "oo"},
		{"எ", "e"}, {"ஏ", "ae"}, {"ஐ", "ai"}, {"ஒ", "o"}, {"ஓ", "oa"}, {"ஔ", "au"},
		{"க", "ka"}, {"ங", "nga"}, {"ச", "cha"}, {"ஞ", "nya"}, {"ட", "ṭa"}, {"ண", "ṇa"},
		{"த", "ta"}, {"ந", "na"}, {"ப", "pa"}, {"ம", "ma"}, {"ய", "ya"}, {"ர", "ra"},
		{"ல", "la"}, {"வ", "va"}, {"ழ", "zha"}, {"ள", "ḷa"}, {"ற", "ṟa"}, {"ன", "ṉa"},
	}),
	"bengali": letterTable("bn", [][2]string{
		{"অ", "a"}, {"আ", "aa"}, {"ই", "i"}, {"ঈ", "ee"}, {"উ", "u"}, {"ঊ", "oo"},
		{"ঋ", "ri"}, {"এ", "e"}, {"ঐ", "oi"}, {"ও", "o"}, {"ঔ", "ou"},
		{"ক", "ka"}, {"খ", "kha"}, {"গ", "ga"}, {"ঘ", "gha"}, {"ঙ", "nga"},
		{"চ", "cha"}, {"ছ", "chha"}, {"জ", "ja"}, {"ঝ", "jha"}, {"ঞ", "nya"},
		{"ট", "ṭa"}, {"ঠ", "ṭha"}, {"ড", "ḍa"}, {"ঢ", "ḍha"}, {"ণ", "ṇa"},
		{"ত", "ta"}, {"থ", "tha"}, {"দ", "da"}, {"ধ", "dha"}, {"ন", "na"},
		{"প", "pa"}, {"ফ", "pha"}, {"ব", "ba"}, {"ভ", "bha"}, {"ম", "ma"},
		{"য", "ya"}, {"র", "ra"}, {"ল", "la"},
		{"শ", "sha"}, {"ষ", "ṣa"}, {"স", "sa"}, {"হ", "ha"},
	}),
	"telugu": letterTable("te", [][2]string{
		{"అ", "a"}, {"ఆ", "aa"}, {"ఇ", "i"}, {"ఈ", "ee"}, {"ఉ", "u"}, {"ఊ", "oo"},
		{"ఋ", "ru"}, {"ఎ", "e"}, {"ఏ", "ae"}, {"ఐ", "ai"}, {"ఒ", "o"}, {"ఓ", "oa"}, {"ఔ", "au"},
		{"క", "ka"}, {"ఖ", "kha"}, {"గ", "ga"}, {"ఘ", "gha"}, {"ఙ", "nga"},
		{"చ", "cha"}, {"ఛ", "chha"}, {"జ", "ja"}, {"ఝ", "jha"}, {"ఞ", "nya"},
		{"ట", "ṭa"}, {"ఠ", "ṭha"}, {"డ", "ḍa"}, {"ఢ", "ḍha"}, {"ణ", "ṇa"},
		{"త", "ta"}, {"థ", "tha"}, {"ద", "da"}, {"ధ", "dha"}, {"న", "na"},
		{"ప", "pa"}, {"ఫ", "pha"}, {"బ", "ba"}, {"భ", "bha"}, {"మ", "ma"},
		{"య", "ya"}, {"ర", "ra"}, {"ల", "la"}, {"వ", "va"},
		{"శ", "sha"}, {"ష", "ṣa"}, {"స", "sa"}, {"హ", "ha"}, {"ళ", "ḷa"},
	}),
	"kannada": letterTable("kn", [][2]string{
		{"ಅ", "a"}, {"ಆ", "aa"}, {"ಇ", "i"}, {"ಈ", "ee"}, {"ಉ", "u"}, {"ಊ", "oo"},
		{"ಋ", "ru"}, {"ಎ", "e"}, {"ಏ", "ae"}, {"ಐ", "ai"}, {"ಒ", "o"}, {"ಓ", "oa"}, {"ಔ", "au"},
		{"ಕ", "ka"}, {"ಖ", "kha"}, {"ಗ", "ga"}, {"ಘ", "gha"}, {"ಙ", "nga"},
		{"ಚ", "cha"}, {"ಛ", "chha"}, {"ಜ", "ja"}, {"ಝ", "jha"}, {"ಞ", "nya"},
		{"ಟ", "ṭa"}, {"ಠ", "ṭha"}, {"ಡ", "ḍa"}, {"ಢ", "ḍha"}, {"ಣ", "ṇa"},
		{"ತ", "ta"}, {"ಥ", "tha"}, {"ದ", "da"}, {"ಧ", "dha"}, {"ನ", "na"},
		{"ಪ", "pa"}, {"ಫ", "pha"}, {"ಬ", "ba"}, {"ಭ", "bha"}, {"ಮ", "ma"},
		{"ಯ", "ya"}, {"ರ", "ra"}, {"ಲ", "la"}, {"ವ", "va"},
		{"ಶ", "sha"}, {"ಷ", "ṣa"}, {"ಸ", "sa"}, {"ಹ", "ha"}, {"ಳ", "ḷa"},
	}),
	"malayalam": letterTable("ml", [][2]string{
		{"അ", "a"}, {"ആ", "aa"}, {"ഇ", "i"}, {"ഈ", "ee"}, {"ഉ", "u"}, {"ഊ", "oo"},
		{"ഋ", "ru"}, {"എ", "e"}, {"ഏ", "ae"}, {"ഐ", "ai"}, {"ഒ", "o"}, {"ഓ", "oa"}, {"ഔ", "au"},
		{"ക", "ka"}, {"ഖ", "kha"}, {"ഗ", "ga"}, {"ഘ", "gha"}, {"ങ", "nga"},
		{"ച", "cha"}, {"ഛ", "chha"}, {"ജ", "ja"}, {"ഝ", "jha"}, {"ഞ", "nya"},
		{"ട", "ṭa"}, {"ഠ", "ṭha"}, {"ഡ", "ḍa"}, {"ഢ", "ḍha"}, {"ണ", "ṇa"},
		{"ത", "ta"}, {"ഥ", "tha"}, {"ദ", "da"}, {"ധ", "dha"}, {"ന", "na"},
		{"പ", "pa"}, {"ഫ", "pha"}, {"ബ", "ba"}, {"ഭ", "bha"}, {"മ", "ma"},
		{"യ", "ya"}, {"ര", "ra"}, {"ല", "la"}, {"വ", "va"},
		{"ശ", "sha"}, {"ഷ", "ṣa"}, {"സ", "sa"}, {"ഹ", "ha"},
		{"ള", "ḷa"}, {"ഴ", "zha"}, {"റ", "ṟa"},
	}),
}
