package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"manualbot-be/internal/entity"
	"manualbot-be/internal/repository/implementation"
	"manualbot-be/pkg/database"
	"manualbot-be/pkg/permission"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	repo := implementation.NewManualRepository(db)
	ctx := context.Background()

	for _, manual := range sampleManuals() {
		if manual.RequiredPermission == 0 {
			manual.RequiredPermission = permission.LevelGeneral
		}
		manual.Active = true
		if err := repo.Create(ctx, manual); err != nil {
			log.Fatalf("Seed failed for %q: %v", manual.Title, err)
		}
		log.Printf("Seeded: %s", manual.Title)
	}

	log.Println("✅ Seed complete")
}

func sampleManuals() []*entity.Manual {
	return []*entity.Manual{
		{
			Category: entity.CategoryPath{Major: "経理", Middle: "精算"},
			Title:    "経費精算",
			Content:  "経費精算の手順:\n1. 領収書を保管する\n2. 経費精算システムに申請を入力する\n3. 上長の承認を得る\n4. 翌月給与と合わせて振込\n\n締め日: 毎月25日",
			Tags:     []string{"経費", "精算", "領収書", "立替"},
		},
		{
			Category: entity.CategoryPath{Major: "経理", Middle: "請求"},
			Title:    "請求書発行の手順",
			Content:  "請求書は販売管理システムから発行します。\n取引先コードと金額を入力し、経理担当の確認後に送付してください。",
			Tags:     []string{"請求書", "発行", "取引先"},
		},
		{
			Category: entity.CategoryPath{Major: "人事", Middle: "休暇"},
			Title:    "有給休暇の申請",
			Content:  "有給休暇は勤怠システムから申請します。\n原則として3営業日前までに申請し、上長の承認を得てください。",
			Tags:     []string{"有給", "休暇", "申請", "勤怠"},
		},
		{
			Category: entity.CategoryPath{Major: "IT", Middle: "アカウント"},
			Title:    "パスワード変更の手順",
			Content:  "社内ポータルのアカウント設定からパスワードを変更できます。\n12文字以上で英数字と記号を組み合わせてください。\n90日ごとの変更が必要です。",
			Tags:     []string{"パスワード", "変更", "アカウント", "セキュリティ"},
		},
		{
			Category: entity.CategoryPath{Major: "総務", Middle: "備品"},
			Title:    "備品購入の申請",
			Content:  "備品の購入は総務部への申請が必要です。\n申請フォームに品名・数量・金額を記入し、5万円以上は部長承認を得てください。",
			Tags:     []string{"備品", "購入", "申請"},
		},
		{
			Category:           entity.CategoryPath{Major: "総務", Middle: "規程"},
			Title:              "社宅管理規程",
			Content:            "社宅の入退去手続きと費用負担の規程です。\n入居申請は総務部へ、退去は1ヶ月前までに届け出てください。",
			Tags:               []string{"社宅", "規程", "入居"},
			RequiredPermission: permission.LevelGeneralAffairs,
		},
		{
			Category:           entity.CategoryPath{Major: "人事", Middle: "評価"},
			Title:              "人事評価の運用ガイド",
			Content:            "評価者向けの運用ガイドです。\n目標設定・中間面談・期末評価の各フェーズの進め方を記載しています。",
			Tags:               []string{"評価", "考課", "面談"},
			RequiredPermission: permission.LevelExecutive,
		},
		{
			Category: entity.CategoryPath{Major: "営業", Middle: "見積"},
			Title:    "見積書作成の手順",
			Content:  "見積書は販売管理システムで作成します。\n標準価格からの値引きは10%まで。それを超える場合は営業部長の承認が必要です。",
			Tags:     []string{"見積", "見積書", "価格"},
		},
	}
}
