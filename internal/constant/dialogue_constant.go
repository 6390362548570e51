package constant

// User-facing dialogue texts. Every rejection message states what was wrong,
// shows a valid example and reminds the user that キャンセル is always
// available.

const (
	// Registration flow
	MsgRegistrationWelcome = "👋 業務マニュアルBotへようこそ！\n\nご利用にはユーザー登録が必要です。\n\n📧 まず、メールアドレスをお教えください。\n\n例: yamada@company.com\n\n※ 途中でやめる場合は「キャンセル」と入力してください"

	MsgEmailInvalidFmt = "❌ メールアドレスの形式が正しくありません。\n\n%s\n\n正しい形式で再度入力してください。\n\n例: yamada@company.com\n\n（「キャンセル」で中止できます）"

	MsgEmailDuplicate = "⚠️ このメールアドレスは既に登録されています。\n\n別のメールアドレスを入力するか、管理者にお問い合わせください。\n\n（「キャンセル」で中止できます）"

	MsgNamePromptFmt = "✅ メールアドレス: %s\n\n続いて、お名前をお教えください。\n\n例: 山田太郎\n\n※ 社内での表示名として使用されます"

	MsgNameInvalidFmt = "❌ お名前の入力に問題があります。\n\n%s\n\n正しい形式で再度入力してください。\n\n例: 山田太郎\n\n（「キャンセル」で中止できます）"

	MsgConfirmRegistrationFmt = "📋 入力内容をご確認ください\n\n📧 メールアドレス:\n%s\n\n👤 お名前:\n%s\n\n✅ 登録する場合は「はい」\n❌ 修正する場合は「いいえ」\n\nと入力してください。"

	MsgConfirmUnclear = "❓ 「はい」または「いいえ」で回答してください。\n\n✅ 登録する: はい\n❌ 修正する: いいえ"

	MsgRegistrationRestart = "🔄 登録をやり直します。\n\n📧 メールアドレスから再度入力してください。\n\n例: yamada@company.com"

	MsgRegistrationCompleteFmt = "🎉 登録完了！\n\nようこそ、%sさん！\n業務マニュアルBotのご利用を開始できます。\n\n📚 マニュアル検索:\nキーワードを入力してください\n\n📋 使い方:\n「ヘルプ」と入力"

	MsgRegistrationFailed = "❌ 申し訳ございません。\n\n登録処理でエラーが発生しました。\nしばらく経ってから再度お試しください。\n\n🔄 再度登録する場合は「登録」と入力してください。"

	MsgAlreadyRegisteredFmt = "こんにちは、%sさん！\n\n既にご登録いただいているため、すぐにマニュアル検索をご利用いただけます。\n\n「ヘルプ」と入力すると使い方をご確認いただけます。"

	// Inquiry flow
	MsgInquiryStart = "📝 問い合わせを開始します\n\nどのような内容でしょうか？\n番号を選択してください。\n\n1️⃣ 質問・疑問\n2️⃣ 要望・改善提案\n3️⃣ 不具合報告\n4️⃣ その他\n\n📋 番号（1〜4）を入力してください。\n\n（「キャンセル」で中止できます）"

	MsgInquiryTypeInvalid = "❌ 無効な選択です。\n\n1〜4の番号を入力してください。\n\n1️⃣ 質問・疑問\n2️⃣ 要望・改善提案\n3️⃣ 不具合報告\n4️⃣ その他"

	MsgInquiryContentPromptFmt = "✅ 「%s」を選択しました。\n\n📝 具体的な内容をお聞かせください。\n\n💡 詳しく書いていただくほど、適切な回答ができます。\n\n• %d文字以上\n• %d文字以内"

	MsgInquiryContentInvalidFmt = "❌ %s\n\n再度入力してください。\n\n• %d文字以上\n• %d文字以内\n\n（「キャンセル」で中止できます）"

	MsgInquiryConfirmFmt = "📋 内容を確認してください\n\n📝 種類: %s\n\n💬 内容:\n%s\n\n✅ 送信する場合は「はい」\n❌ 修正する場合は「いいえ」\n\nと入力してください。"

	MsgInquiryConfirmUnclear = "❓ 「はい」または「いいえ」で回答してください。\n\n✅ 送信する: はい\n❌ 修正する: いいえ"

	MsgInquiryModify = "🔄 内容を修正します。\n\n📝 修正した内容を入力してください。"

	MsgInquiryCompleteFmt = "✅ 問い合わせを送信しました！\n\n📝 種類: %s\n📋 受付番号: %s\n\n📧 回答は管理者が確認後、適切な方法でご連絡いたします。\n\n🔍 引き続きマニュアル検索もご利用いただけます。"

	MsgInquiryFailed = "❌ 申し訳ございません。\n\n問い合わせの送信でエラーが発生しました。\nしばらく経ってから再度お試しください。\n\n🔄 再度問い合わせする場合は「問い合わせ」と入力してください。"

	// Shared
	MsgFlowCancelled = "✅ 中止しました。\n\n🔍 マニュアル検索はキーワードを入力してください。\n📋 「ヘルプ」で使い方を確認できます。"
)

// Router-level texts
const (
	MsgRegistrationPrompt = "👋 業務マニュアルBotへようこそ！\n\nご利用にはユーザー登録が必要です。\n\n🚀 「登録」と入力して登録を開始するか、\n📋 「ヘルプ」と入力して詳細をご確認ください。"

	MsgHelp = "📋 業務マニュアルBotの使い方\n\n🔍 マニュアル検索:\nキーワードを入力（例: 経費精算、有給申請）\n\n📁 カテゴリ一覧:\n「カテゴリ」と入力\n\n📝 問い合わせ:\n「問い合わせ」と入力\n\n❓ このヘルプ:\n「ヘルプ」と入力"

	MsgSearchNoResultsFmt = "🔍 「%s」の検索結果\n\n該当するマニュアルが見つかりませんでした。\n\n💡 検索のコツ:\n• 別のキーワードをお試しください\n• 「カテゴリ」と入力でカテゴリ一覧表示\n• 「ヘルプ」と入力で詳しい使い方\n\n例: 経費精算、有給申請、パスワード変更"

	MsgSystemError = "❌ 申し訳ございません。\n\n一時的なエラーが発生しました。\nしばらく経ってから再度お試しください。"
)
