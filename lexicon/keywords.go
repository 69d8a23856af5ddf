package lexicon

import "emotion-lab/domain"

// A trailing '*' marks a stem: it matches any word starting with it.
// Other entries match whole words or whole phrases only.

var aggressionKeywords = map[domain.Language][]string{
	domain.LangRU: {
		"дурак*", "идиот*", "тупой", "тупая", "тупые", "тупица", "бред", "ерунд*", "херн*",
		"фигн*", "говн*", "дерьм*", "мудак*", "козел", "козлы", "урод*", "кретин*",
		"дебил*", "сволоч*", "заткнись", "отвали", "пошел вон", "пошла вон", "достал*",
		"надоел*", "бесит", "бесят", "задолбал*", "заколебал*", "ненавижу", "злой",
	},
	domain.LangEN: {
		"fuck*", "shit*", "damn", "stupid", "idiot*", "moron*", "asshole*", "bitch*",
		"bastard*", "crap*", "suck*", "hate*", "kill*", "die", "shut up", "dumb*",
		"loser*", "jerk*", "screw you",
	},
}

var stressKeywords = map[domain.Language][]string{
	domain.LangRU: {
		"срочно", "быстрее", "опять", "не успева*", "горит", "пожар", "аврал", "завал",
		"дедлайн*", "вчера нужно было", "когда это закончится", "не работает", "сломал*",
		"глючит", "падает", "крашится", "виснет", "лагает", "паник*", "ужас*", "кошмар*",
		"стресс*", "устал*", "выгора*", "помогите", "тревож*", "волнуюсь", "переживаю",
		"боюсь", "страшно",
	},
	domain.LangEN: {
		"urgent*", "asap", "deadline*", "panic*", "stress*", "worried", "anxious", "scared",
		"terrified", "nightmare", "disaster", "emergency", "crisis", "help", "overwhelm*",
		"burnout", "exhausted", "broken", "not working", "on fire",
	},
}

var positivityKeywords = map[domain.Language][]string{
	domain.LangRU: {
		"спасибо", "благодар*", "отличн*", "хорошо", "хороший", "молодец*", "супер", "рад",
		"рада", "классн*", "круто", "замечательн*", "прекрасн*", "великолепн*", "чудесн*",
		"ценю", "уважаю", "согласен", "согласна", "здорово", "умниц*", "браво", "ура",
		"люблю", "обожаю", "восторг*", "счастлив*", "доволен", "довольна",
	},
	domain.LangEN: {
		"thank*", "great", "good", "excellent", "awesome", "amazing", "wonderful",
		"fantastic", "perfect", "love*", "happy", "glad", "appreciate*", "well done", "nice",
		"cool", "brilliant",
	},
}

// hedgingPhrases signal sarcasm when they appear next to an ellipsis.
var hedgingPhrases = map[domain.Language][]string{
	domain.LangRU: {
		"конечно", "ага", "да-да", "ну да", "как же", "еще бы", "ещё бы", "ну-ну", "разумеется",
	},
	domain.LangEN: {
		"sure", "yeah right", "of course", "totally", "obviously", "oh great",
	},
}
