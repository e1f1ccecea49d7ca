package services

const reportTemplateHTML = `<!DOCTYPE html>
<html lang="zh-TW">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>健康評估與保健品推薦報告</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            line-height: 1.6;
            color: #333;
            max-width: 800px;
            margin: 0 auto;
            padding: 20px;
        }
        h1, h2, h3 {
            color: #2c3e50;
        }
        .header {
            text-align: center;
            margin-bottom: 30px;
            border-bottom: 2px solid #3498db;
            padding-bottom: 10px;
        }
        .section {
            margin-bottom: 30px;
            padding: 15px;
            border-radius: 5px;
        }
        .basic-info {
            background-color: #f8f9fa;
        }
        .symptoms {
            background-color: #e8f4f8;
        }
        .recommendations {
            background-color: #e8f8ef;
        }
        .usage {
            background-color: #f8f4e8;
        }
        .footer {
            margin-top: 50px;
            font-size: 12px;
            text-align: center;
            color: #7f8c8d;
            border-top: 1px solid #ddd;
            padding-top: 20px;
        }
        table {
            width: 100%;
            border-collapse: collapse;
            margin: 15px 0;
        }
        th, td {
            border: 1px solid #ddd;
            padding: 8px;
            text-align: left;
        }
        th {
            background-color: #f2f2f2;
        }
        .supplement-item {
            margin-bottom: 15px;
            padding-bottom: 15px;
            border-bottom: 1px dashed #ddd;
        }
        .supplement-name {
            font-weight: bold;
            color: #3498db;
        }
        .disclaimer {
            font-style: italic;
            color: #7f8c8d;
        }
    </style>
</head>
<body>
    <div class="header">
        <h1>健康評估與保健品推薦報告</h1>
        <p>報告生成日期：{{.ReportDate}}</p>
        <p>報告編號：{{.ReportID}}</p>
    </div>

    <div class="section basic-info">
        <h2>基本信息</h2>
        <table>
            <tr>
                <th>性別</th>
                <td>{{.Gender}}</td>
                <th>年齡</th>
                <td>{{.Age}}</td>
            </tr>
            <tr>
                <th>身高</th>
                <td>{{.Height}} cm</td>
                <th>體重</th>
                <td>{{.Weight}} kg</td>
            </tr>
        </table>
    </div>

    {{if or .Symptoms .BodySystems .Conditions}}
    <div class="section symptoms">
        <h2>健康狀況摘要</h2>

        {{if .Symptoms}}
        <h3>主要症狀</h3>
        <ul>
            {{range .Symptoms}}
            <li>{{.}}</li>
            {{end}}
        </ul>
        {{end}}

        {{if .BodySystems}}
        <h3>需要支持的身體系統</h3>
        <ul>
            {{range .BodySystems}}
            <li>{{.}}</li>
            {{end}}
        </ul>
        {{end}}

        {{if .Conditions}}
        <h3>特定身體狀況</h3>
        <ul>
            {{range .Conditions}}
            <li>{{.}}</li>
            {{end}}
        </ul>
        {{end}}
    </div>
    {{end}}

    {{if .Answers}}
    <div class="section">
        <h2>深度健康評估</h2>
        {{range .Answers}}
        <div style="margin-bottom: 15px;">
            <p style="font-weight: bold;">{{.Question}}</p>
            <p>{{.Answer}}</p>
        </div>
        {{end}}
    </div>
    {{end}}

    <div class="section recommendations">
        <h2>保健品推薦</h2>
        <p>{{.Explanation}}</p>

        {{range .Supplements}}
        <div class="supplement-item">
            <div class="supplement-name">{{.Name}}</div>
            <table>
                <tr>
                    <th>建議劑量</th>
                    <td>{{.Dosage}}</td>
                </tr>
                <tr>
                    <th>使用方法</th>
                    <td>{{.Usage}}</td>
                </tr>
            </table>
        </div>
        {{end}}
    </div>

    <div class="section usage">
        <h2>使用建議</h2>
        <ul>
            <li>保健品應作為均衡飲食的補充，不能替代正常飲食</li>
            <li>請按照建議劑量服用，不要過量</li>
            <li>如有慢性疾病或正在服用藥物，請在服用前諮詢醫生</li>
            <li>保持規律作息和適當運動，效果更佳</li>
            <li>建議在3個月後重新評估健康狀況，調整保健方案</li>
        </ul>
    </div>

    <div class="footer">
        <p class="disclaimer">本報告僅供參考，不構成醫療建議。如有健康問題，請諮詢專業醫療人員。</p>
        <p>© {{.CurrentYear}} 健康問卷與保健品推薦系統. 保留所有權利.</p>
    </div>
</body>
</html>
`
