package marathi

// Marathi function words carrying no lexical weight for retrieval.
var stopwords = []string{
	"आहे", "आहेत", "असणे", "असलेल्या", "असा", "असून", "असे", "अशी",
	"आणि", "आता", "आपण", "आपला", "आपली", "आपले", "आम्ही",
	"एक", "एका", "कधी", "करणे", "करत", "करून", "का", "काही",
	"काय", "किंवा", "की", "कुठे", "केला", "केली", "केले", "कोण",
	"खूप", "जी", "जे", "जो", "ज्या", "झाला", "झाली", "झाले",
	"तर", "तसेच", "ती", "तुझा", "तुझी", "तुझे", "तुम्ही",
	"ते", "तेथे", "तो", "त्या", "त्याचा", "त्याची", "त्याचे",
	"त्यांचा", "त्यांची", "त्यांचे", "दोन", "देखील",
	"ना", "नाही", "निर्माण", "पण", "परंतु", "पर्यंत", "पासून",
	"फार", "बरोबर", "मग", "मध्ये", "मात्र", "माझा", "माझी", "माझे",
	"मी", "म्हणजे", "म्हणून", "म्हणतात", "या", "येणे", "येथे",
	"व", "वर", "सर्व", "साठी", "सुद्धा", "हा", "ही", "हे", "होणे",
	"होता", "होती", "होते", "ह्या", "च",
}

func stopwordSet() map[string]struct{} {
	set := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		set[w] = struct{}{}
	}
	return set
}
