package lexicon

import "emotion-lab/domain"

// Canonical forms never contain a surface form of any category as a whole word,
// otherwise a second normalization pass would rewrite them again.
// Within a category, longer phrases come before the words they start with.

var itSlang = [][2]string{
	{"кодить", "программировать"},
	{"ботать", "работать"},
	{"пушить", "отправлять"},
	{"пулить", "получать"},
	{"мерджить", "объединять"},
	{"коммитить", "сохранять"},
	{"деплоить", "развертывать"},
	{"билдить", "собирать"},
	{"тестить", "тестировать"},
	{"дебажить", "отлаживать"},
	{"рефакторить", "переписывать"},
	{"ревьюить", "проверять"},
	{"апрувить", "одобрять"},
	{"реджектить", "отклонять"},
	{"фиксить", "исправлять"},
	{"крашить", "ронять"},
	{"лагать", "тормозить"},
	{"фризить", "зависать"},
	{"глючить", "работать неправильно"},
	{"багованный", "с ошибками"},
	{"стейджинг", "тестовая среда"},
	{"продакшн", "рабочая среда"},
	{"прод", "рабочая среда"},
	{"девелопмент", "разработка"},
	{"фронтенд", "клиентская часть"},
	{"бэкенд", "серверная часть"},
	{"фулстек", "полный стек"},
	{"джуниор", "младший разработчик"},
	{"мидл", "средний разработчик"},
	{"сеньор", "старший разработчик"},
	{"тимлид", "руководитель команды"},
	{"стендап", "ежедневная встреча"},
	{"ретро", "ретроспектива"},
	{"планинг", "планирование"},
	{"гроуминг", "уточнение задач"},
	{"бэклог", "список задач"},
	{"таска", "задача"},
	{"таски", "задачи"},
	{"фича", "функция"},
	{"фичи", "функции"},
	{"багрепорт", "отчет об ошибке"},
	{"хотфикс", "срочное исправление"},
	{"релиз", "выпуск"},
	{"кубер", "оркестрация"},
	{"апи", "программный интерфейс"},
	{"граф кью эл", "язык запросов"},
	{"си шарп", "язык программирования"},
	{"тайпскрипт", "язык программирования"},
	{"джаваскрипт", "язык программирования"},
	{"питон", "язык программирования"},
	{"джава", "язык программирования"},
	{"пхп", "язык программирования"},
	{"prod", "production"},
	{"repo", "repository"},
	{"pr", "pull request"},
	{"lgtm", "looks good to me"},
	{"wip", "work in progress"},
}

var generalSlang = [][2]string{
	{"чуть чуть", "немного"},
	{"норм", "нормально"},
	{"окей", "хорошо"},
	{"ок", "хорошо"},
	{"кул", "круто"},
	{"топ", "отлично"},
	{"огонь", "отлично"},
	{"бомба", "отлично"},
	{"имба", "отлично"},
	{"супер", "отлично"},
	{"кайф", "удовольствие"},
	{"прикол", "шутка"},
	{"рофл", "шутка"},
	{"жесть", "сильно"},
	{"капец", "очень"},
	{"пипец", "очень"},
	{"ваще", "вообще"},
	{"щас", "сейчас"},
	{"чё", "что"},
	{"чо", "что"},
	{"шо", "что"},
	{"када", "когда"},
	{"токо", "только"},
	{"тока", "только"},
	{"чутка", "немного"},
	{"типо", "типа"},
	{"короче", "в общем"},
	{"вобщем", "в общем"},
	{"вообщем", "в общем"},
	{"канеш", "конечно"},
	{"канешн", "конечно"},
	{"пон", "понятно"},
	{"ясн", "ясно"},
	{"збс", "здорово"},
	{"имхо", "по моему мнению"},
	{"кмк", "мне кажется"},
	{"фуфло", "плохо"},
	{"отстой", "плохо"},
	{"лажа", "плохо"},
	{"фигня", "плохо"},
	{"херня", "плохо"},
	{"треш", "плохо"},
	{"дичь", "странно"},
	{"кринж", "неловко"},
	{"лол", "смешно"},
	{"кек", "смешно"},
	{"ржака", "смешно"},
	{"угар", "смешно"},
	{"ржу", "смеюсь"},
	{"спс", "спасибо"},
	{"пасиб", "спасибо"},
	{"плз", "пожалуйста"},
	{"пж", "пожалуйста"},
	{"мб", "может быть"},
	{"хз", "не знаю"},
	{"thx", "thanks"},
	{"pls", "please"},
	{"plz", "please"},
	{"idk", "i do not know"},
	{"imo", "in my opinion"},
	{"btw", "by the way"},
	{"omg", "oh my god"},
	{"u", "you"},
	{"ur", "your"},
}

var corporateSlang = [][2]string{
	{"гугл док", "документ"},
	{"бест практис", "лучшие практики"},
	{"юз кейс", "сценарий использования"},
	{"ван ту ван", "личная встреча"},
	{"ту ду", "список дел"},
	{"митинг", "встреча"},
	{"колл", "звонок"},
	{"созвон", "звонок"},
	{"зум", "видеоконференция"},
	{"мейл", "электронная почта"},
	{"емейл", "электронная почта"},
	{"эксель", "таблица"},
	{"дедлайн", "срок"},
	{"дедлайны", "сроки"},
	{"таймлайн", "временные рамки"},
	{"роадмап", "план развития"},
	{"майлстоун", "этап"},
	{"кпи", "показатели эффективности"},
	{"репорт", "отчет"},
	{"фидбек", "обратная связь"},
	{"апдейт", "обновление"},
	{"аутком", "результат"},
	{"импакт", "влияние"},
	{"бенефит", "выгода"},
	{"профит", "прибыль"},
	{"иссью", "проблема"},
	{"челлендж", "вызов"},
	{"оппортунити", "возможность"},
	{"инсайт", "понимание"},
	{"экшн", "действие"},
	{"воркфлоу", "рабочий процесс"},
	{"пайплайн", "конвейер"},
	{"темплейт", "шаблон"},
	{"кейс", "случай"},
	{"кастомер", "клиент"},
	{"юзер", "пользователь"},
	{"стейкхолдер", "заинтересованная сторона"},
	{"вендор", "поставщик"},
	{"саплаер", "поставщик"},
	{"асап", "срочно"},
	{"эскалировать", "передать выше"},
	{"овертайм", "переработка"},
	{"онбординг", "адаптация"},
	{"оффер", "предложение"},
	{"аппрув", "одобрение"},
}

var emotionalSlang = [][2]string{
	{"ужас как", "очень сильно"},
	{"кошмар как", "очень сильно"},
	{"жуть как", "очень сильно"},
	{"блевать хочется", "вызывает отвращение"},
	{"в ярости", "очень зол"},
	{"в бешенстве", "очень зол"},
	{"на седьмом небе", "очень счастлив"},
	{"бесит", "раздражает"},
	{"достал", "надоел"},
	{"задолбал", "надоел"},
	{"заколебал", "надоел"},
	{"достало", "надоело"},
	{"задолбало", "надоело"},
	{"напрягает", "беспокоит"},
	{"парит", "беспокоит"},
	{"грузит", "утомляет"},
	{"выматывает", "утомляет"},
	{"бомбит", "очень злит"},
	{"подгорает", "злит"},
	{"горит", "злится"},
	{"тошнит", "вызывает отвращение"},
	{"воротит", "вызывает отвращение"},
	{"взбешен", "очень зол"},
	{"офигел", "ошеломлен"},
	{"обалдел", "ошеломлен"},
	{"охренел", "ошеломлен"},
	{"офигенно", "отлично"},
	{"обалденно", "отлично"},
	{"кайфую", "получаю удовольствие"},
	{"депрессую", "грущу"},
	{"хандрю", "грущу"},
}

var typoSlang = [][2]string{
	{"превет", "привет"},
	{"спосибо", "спасибо"},
	{"спасиба", "спасибо"},
	{"харашо", "хорошо"},
	{"сдлеать", "сделать"},
	{"работет", "работает"},
	{"извените", "извините"},
	{"извенить", "извинить"},
	{"сдесь", "здесь"},
	{"пажалуйста", "пожалуйста"},
	{"пожалуста", "пожалуйста"},
	{"щитаю", "считаю"},
	{"исчо", "еще"},
	{"ищо", "еще"},
	{"чтото", "что-то"},
	{"както", "как-то"},
	{"teh", "the"},
	{"recieve", "receive"},
	{"definately", "definitely"},
	{"seperate", "separate"},
	{"untill", "until"},
	{"wierd", "weird"},
	{"thier", "their"},
}

// slangTables is iterated in domain.SlangCategories order.
var slangTables = map[domain.SlangCategory][][2]string{
	domain.CategoryIT:        itSlang,
	domain.CategoryGeneral:   generalSlang,
	domain.CategoryCorporate: corporateSlang,
	domain.CategoryEmotional: emotionalSlang,
	domain.CategoryTypo:      typoSlang,
}
